package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
)

const (
	principalKey = "auth_principal"
	bearerPrefix = "Bearer "
)

// Principal represents the authenticated caller.
type Principal struct {
	Subject     string
	Roles       []string
	Authorities []string
}

// HasAuthority reports whether the principal was granted authority.
func (p *Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// TokenVerifier is the subset of TokenManager the middleware needs.
type TokenVerifier interface {
	ValidateToken(token string) bool
	ExtractSubject(token string) (string, error)
	ExtractRoles(token string) []string
}

// AuthMiddleware turns bearer tokens into principals.
type AuthMiddleware struct {
	tokens TokenVerifier
	logger *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Handle attaches a principal when the request carries a valid bearer token.
// It never rejects; route guards decide whether a principal is required.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return c.Next()
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if !m.tokens.ValidateToken(token) {
		m.logger.Debug("invalid bearer token", zap.String("path", c.Path()))
		return c.Next()
	}

	subject, err := m.tokens.ExtractSubject(token)
	if err != nil {
		m.logger.Debug("token subject unavailable", zap.Error(err))
		return c.Next()
	}

	roles := m.tokens.ExtractRoles(token)
	authorities := make([]string, 0, len(roles))
	for _, role := range roles {
		authorities = append(authorities, domain.Authority(role))
	}

	c.Locals(principalKey, &Principal{Subject: subject, Roles: roles, Authorities: authorities})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
