package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// MinSecretBytes is the minimum HMAC key length (256 bits).
const MinSecretBytes = 32

// DefaultJWTSecret is the development fallback for AUTH_JWT_SECRET. Validate
// refuses it when APP_ENV is production.
const DefaultJWTSecret = "dev-secret-change-me-0123456789abcdef"

// EnvProduction is the APP_ENV value for production deployments.
const EnvProduction = "production"

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Users    UsersConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `env:"APP_NAME" envDefault:"ms-users"`
	Env                   string `env:"APP_ENV" envDefault:"development"`
	Host                  string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port                  string `env:"APP_PORT" envDefault:"8080"`
	Version               string `env:"APP_VERSION" envDefault:"dev"`
	RequestTimeoutSeconds int    `env:"HTTP_REQUEST_TIMEOUT_SECONDS" envDefault:"30"`
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string `env:"POSTGRES_DSN"`
	MaxConns       int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MinConns       int32  `env:"POSTGRES_MIN_CONNS" envDefault:"2"`
	RunMigrations  bool   `env:"POSTGRES_RUN_MIGRATIONS" envDefault:"true"`
	ConnMaxIdleSec int32  `env:"POSTGRES_CONN_MAX_IDLE_SECONDS" envDefault:"30"`
	ConnMaxLifeSec int32  `env:"POSTGRES_CONN_MAX_LIFE_SECONDS" envDefault:"300"`
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr            string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	Password        string `env:"REDIS_PASSWORD"`
	DB              int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLSeconds int    `env:"USERS_CACHE_TTL_SECONDS" envDefault:"300"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret    string `env:"AUTH_JWT_SECRET" envDefault:"dev-secret-change-me-0123456789abcdef"`
	PasswordMode string `env:"AUTH_PASSWORD_MODE" envDefault:"plain"`
	BcryptCost   int    `env:"AUTH_BCRYPT_COST" envDefault:"12"`
}

// UsersConfig holds registration rules.
type UsersConfig struct {
	MinSalary decimal.Decimal `env:"USERS_MIN_SALARY" envDefault:"1"`
	MaxSalary decimal.Decimal `env:"USERS_MAX_SALARY" envDefault:"15000000"`
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < MinSecretBytes {
		return fmt.Errorf("AUTH_JWT_SECRET must be at least %d bytes", MinSecretBytes)
	}
	if strings.EqualFold(strings.TrimSpace(c.App.Env), EnvProduction) && c.Auth.JWTSecret == DefaultJWTSecret {
		return errors.New("AUTH_JWT_SECRET must be set explicitly when APP_ENV is production")
	}
	switch c.Auth.PasswordMode {
	case PasswordModePlain, PasswordModeBcrypt:
	default:
		return fmt.Errorf("invalid AUTH_PASSWORD_MODE %q", c.Auth.PasswordMode)
	}
	if c.Users.MinSalary.GreaterThan(c.Users.MaxSalary) {
		return errors.New("USERS_MIN_SALARY must not exceed USERS_MAX_SALARY")
	}
	return nil
}

// Password storage modes.
const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns how long cached user lookups stay in Redis.
func (r RedisConfig) CacheTTL() time.Duration {
	if r.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(r.CacheTTLSeconds) * time.Second
}
