package persistence

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(migrationsFS, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	body, err := fs.ReadFile(migrationsFS, migrationsDir+"/00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CONSTRAINT users_email_key UNIQUE (email)")
	assert.Contains(t, string(body), "NUMERIC(15,2)")
}

func TestEmbeddedMigrations_RoleFitsEveryKnownRole(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, migrationsDir+"/00002_widen_users_role.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "ALTER COLUMN role TYPE VARCHAR(100)")
	assert.LessOrEqual(t, len("ADMIN,USER,ASESOR,CLIENTE"), 100)
}

func TestRunMigrations_NilPoolSkips(t *testing.T) {
	assert.NoError(t, RunMigrations(context.Background(), nil, zap.NewNop()))
}

func TestMigrate(t *testing.T) {
	orig := gooseUp
	defer func() { gooseUp = orig }()

	var gotDir string
	gooseUp = func(_ context.Context, _ *sql.DB, dir string) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, migrate(context.Background(), nil, zap.NewNop()))
	assert.Equal(t, migrationsDir, gotDir)

	boom := errors.New("boom")
	gooseUp = func(context.Context, *sql.DB, string) error { return boom }
	err := migrate(context.Background(), nil, zap.NewNop())
	assert.ErrorIs(t, err, boom)
}
