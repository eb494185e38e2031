package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
)

const (
	defaultUserCacheTTL       = 5 * time.Minute
	defaultUserCacheNamespace = "users"
)

// CachedUserRepository decorates a UserRepository with a Redis read-through
// cache for lookups by id and document number. Credentials never reach Redis,
// so GetByEmail, which feeds login, always goes to the inner repository.
type CachedUserRepository struct {
	inner     UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	logger    *zap.Logger
}

// NewCachedUserRepository wraps inner. A nil client disables caching.
func NewCachedUserRepository(inner UserRepository, rdb *redis.Client, ttl time.Duration, namespace string, logger *zap.Logger) *CachedUserRepository {
	if ttl <= 0 {
		ttl = defaultUserCacheTTL
	}
	if namespace == "" {
		namespace = defaultUserCacheNamespace
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedUserRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace, logger: logger}
}

// cachedUser is the Redis representation of a user, password excluded.
type cachedUser struct {
	ID             int64           `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	BirthDate      time.Time       `json:"birth_date"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	DocumentNumber string          `json:"document_number,omitempty"`
	Role           string          `json:"role"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func toCachedUser(u *domain.User) cachedUser {
	return cachedUser{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		BirthDate:      u.BirthDate,
		Address:        u.Address,
		Phone:          u.Phone,
		Email:          u.Email,
		BaseSalary:     u.BaseSalary,
		DocumentNumber: u.DocumentNumber,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (c cachedUser) toDomain() *domain.User {
	return &domain.User{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		BirthDate:      c.BirthDate,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		BaseSalary:     c.BaseSalary,
		DocumentNumber: c.DocumentNumber,
		Role:           c.Role,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (r *CachedUserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.inner.Create(ctx, user)
}

func (r *CachedUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.inner.ExistsByEmail(ctx, email)
}

func (r *CachedUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.inner.GetByEmail(ctx, email)
}

func (r *CachedUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.readThrough(ctx, r.key("id", strconv.FormatInt(id, 10)), func() (*domain.User, error) {
		return r.inner.GetByID(ctx, id)
	})
}

func (r *CachedUserRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error) {
	return r.readThrough(ctx, r.key("doc", documentNumber), func() (*domain.User, error) {
		return r.inner.GetByDocumentNumber(ctx, documentNumber)
	})
}

func (r *CachedUserRepository) readThrough(ctx context.Context, key string, load func() (*domain.User, error)) (*domain.User, error) {
	if r.rdb == nil {
		return load()
	}

	if b, err := r.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var cached cachedUser
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached.toDomain(), nil
		}
		_ = r.rdb.Del(ctx, key).Err()
	}

	user, err := load()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(toCachedUser(user)); err == nil {
		if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
			r.logger.Debug("user cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return user, nil
}

// key embeds value verbatim. Redis keys are binary safe and the value is the
// last segment, so distinct values never share a key.
func (r *CachedUserRepository) key(kind, value string) string {
	return fmt.Sprintf("%s:%s:%s", r.namespace, kind, value)
}
