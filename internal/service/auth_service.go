package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/auth"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/events"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/repository"
	apperrors "github.com/SergioAyalaHernandez/ms-users-crediya/pkg/util/errorutil"
)

const (
	msgLoginUserNotFound = "Usuario no encontrado"
	msgWrongPassword     = "Contraseña incorrecta"
)

var errMissingUserID = errors.New("persisted user has no id")

// TokenIssuer signs tokens for authenticated subjects.
type TokenIssuer interface {
	IssueToken(subject string, claims map[string]any) (string, error)
}

// AuthService authenticates users by email and password.
type AuthService struct {
	users      repository.UserRepository
	tokens     TokenIssuer
	hasher     auth.PasswordHasher
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Tokens     TokenIssuer
	Hasher     auth.PasswordHasher
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	s := &AuthService{
		users:      deps.UserRepo,
		tokens:     deps.Tokens,
		hasher:     deps.Hasher,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
	if s.hasher == nil {
		s.hasher = auth.PlainHasher{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Login returns a signed token whose roles claim carries the user's role value.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("login for unknown email", zap.String("email", email))
			return "", apperrors.NewUnauthorized(msgLoginUserNotFound)
		}
		return "", s.internal("load user", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("login with wrong password", zap.Int64("user_id", user.ID))
			return "", apperrors.NewUnauthorized(msgWrongPassword)
		}
		return "", s.internal("compare password", err)
	}

	if user.ID == 0 {
		return "", s.internal("build subject", errMissingUserID)
	}

	token, err := s.tokens.IssueToken(strconv.FormatInt(user.ID, 10), map[string]any{
		domain.ClaimRoles: user.Role,
	})
	if err != nil {
		return "", s.internal("issue token", err)
	}

	s.logger.Info("user authenticated", zap.Int64("user_id", user.ID))
	if s.dispatcher != nil {
		event := events.NewEvent(events.EventUserAuthenticated, user.ID, events.UserAuthenticatedPayload{
			Email: user.Email,
			Roles: user.Role,
		})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handler failed", zap.String("event", string(event.Type)), zap.Error(err))
		}
	}
	return token, nil
}

func (s *AuthService) internal(op string, err error) error {
	s.logger.Error(op+" failed", zap.Error(err))
	return apperrors.NewInternalError(err)
}
