package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
)

// TokenTTL is the lifetime of every issued token.
const TokenTTL = time.Hour

// MinSecretBytes is the shortest accepted HMAC key (256 bits).
const MinSecretBytes = 32

// ErrWeakSecret is returned when the signing key is shorter than MinSecretBytes.
var ErrWeakSecret = fmt.Errorf("signing key must be at least %d bytes", MinSecretBytes)

// TokenManager handles issuing and validating JWT tokens.
// It is immutable after construction and safe for concurrent use.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager around a copy of secret.
func NewTokenManager(secret []byte) (*TokenManager, error) {
	if len(secret) < MinSecretBytes {
		return nil, ErrWeakSecret
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &TokenManager{secret: key, ttl: TokenTTL, now: time.Now}, nil
}

// IssueToken signs a token for subject carrying the given custom claims.
// Registered claims (sub, iat, exp) always win over entries in claims.
func (tm *TokenManager) IssueToken(subject string, claims map[string]any) (string, error) {
	issuedAt := tm.now()
	payload := jwt.MapClaims{}
	for k, v := range claims {
		payload[k] = v
	}
	payload["sub"] = subject
	payload["iat"] = jwt.NewNumericDate(issuedAt)
	payload["exp"] = jwt.NewNumericDate(issuedAt.Add(tm.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken reports whether the token has a valid signature and has not expired.
func (tm *TokenManager) ValidateToken(tokenStr string) bool {
	_, err := tm.parse(tokenStr)
	return err == nil
}

// ExtractSubject returns the sub claim of a valid token.
func (tm *TokenManager) ExtractSubject(tokenStr string) (string, error) {
	claims, err := tm.parse(tokenStr)
	if err != nil {
		return "", err
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", errors.New("token has no subject")
	}
	return subject, nil
}

// ExtractRoles returns the trimmed entries of the roles claim.
// Any failure yields an empty list.
func (tm *TokenManager) ExtractRoles(tokenStr string) []string {
	claims, err := tm.parse(tokenStr)
	if err != nil {
		return []string{}
	}
	raw, ok := claims[domain.ClaimRoles].(string)
	if !ok {
		return []string{}
	}
	return SplitRoles(raw)
}

func (tm *TokenManager) parse(tokenStr string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// JoinRoles renders roles in the comma-joined claim format.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ",")
}

// SplitRoles parses the comma-joined claim format, dropping blank entries.
func SplitRoles(raw string) []string {
	roles := []string{}
	for _, part := range strings.Split(raw, ",") {
		if role := strings.TrimSpace(part); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}
