package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
)

var (
	// ErrUserNotFound is returned when no row matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when the unique index on email rejects an insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

const (
	uniqueViolation      = "23505"
	emailUniqueIndexName = "users_email_key"
)

// Querier is satisfied by *pgxpool.Pool, pgx.Tx and *pgx.Conn.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository defines persistence access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error)
}

type userRepository struct {
	db Querier
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db Querier) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, first_name, last_name, birth_date, address, phone, email,
        base_salary, document_number, role, password, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (first_name, last_name, birth_date, address, phone, email,
            base_salary, document_number, role, password)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.BirthDate,
		user.Address,
		user.Phone,
		user.Email,
		user.BaseSalary,
		nullIfEmpty(user.DocumentNumber),
		user.Role,
		user.Password,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isEmailConflict(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.getOne(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.getOne(ctx, query, email)
}

func (r *userRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE document_number=$1 ORDER BY id LIMIT 1`
	return r.getOne(ctx, query, documentNumber)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		user     domain.User
		document *string
	)
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.BirthDate,
		&user.Address,
		&user.Phone,
		&user.Email,
		&user.BaseSalary,
		&document,
		&user.Role,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	if document != nil {
		user.DocumentNumber = *document
	}
	return &user, nil
}

func isEmailConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolation &&
		pgErr.ConstraintName == emailUniqueIndexName
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
