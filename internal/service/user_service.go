package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/auth"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/events"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/repository"
	apperrors "github.com/SergioAyalaHernandez/ms-users-crediya/pkg/util/errorutil"
)

const (
	msgUserExists   = "El usuario con el correo electrónico ya existe"
	msgUserNotFound = "Usuario no encontrado"
)

// UserService coordinates registration and user lookups.
type UserService struct {
	users      repository.UserRepository
	bounds     SalaryBounds
	hasher     auth.PasswordHasher
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	UserRepo     repository.UserRepository
	SalaryBounds SalaryBounds
	Hasher       auth.PasswordHasher
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	s := &UserService{
		users:      deps.UserRepo,
		bounds:     deps.SalaryBounds,
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

// CreateUser validates the input, rejects known emails and persists a new
// record with the role defaulted to USER.
func (s *UserService) CreateUser(ctx context.Context, in domain.RegistrationInput) (*domain.User, error) {
	if err := ValidateRegistration(in, s.bounds); err != nil {
		s.logger.Warn("registration rejected", zap.Error(err))
		return nil, err
	}
	in.Role = NormalizeRole(in.Role)

	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, s.internal("check email", err)
	}
	if exists {
		s.logger.Warn("email already registered", zap.String("email", in.Email))
		return nil, apperrors.NewConflict(apperrors.CodeUserExists, msgUserExists)
	}

	user := domain.NewUserFromInput(in)
	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, s.internal("hash password", err)
	}
	user.Password = hashed

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.logger.Warn("email registered concurrently", zap.String("email", in.Email))
			return nil, apperrors.NewConflict(apperrors.CodeUserExists, msgUserExists)
		}
		return nil, s.internal("create user", err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	s.publish(ctx, events.NewEvent(events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Email: user.Email,
		Role:  user.Role,
	}))
	return user, nil
}

// FindByDocumentNumber returns the user holding the document number.
func (s *UserService) FindByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error) {
	if documentNumber == "" {
		return nil, apperrors.NewNotFound(apperrors.CodeUserNotFound, msgUserNotFound)
	}
	user, err := s.users.GetByDocumentNumber(ctx, documentNumber)
	return s.lookupResult(user, err, "find by document")
}

// FindByID returns the user with the given id.
func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	return s.lookupResult(user, err, "find by id")
}

func (s *UserService) lookupResult(user *domain.User, err error, op string) (*domain.User, error) {
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewNotFound(apperrors.CodeUserNotFound, msgUserNotFound)
		}
		return nil, s.internal(op, err)
	}
	return user, nil
}

func (s *UserService) internal(op string, err error) error {
	s.logger.Error(op+" failed", zap.Error(err))
	return apperrors.NewInternalError(err)
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}
