package persistence

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/config"
)

func TestNewPostgres_EmptyDSN(t *testing.T) {
	pg, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, pg.PoolHandle())
	assert.Error(t, pg.Ping(context.Background()))
	pg.Close()
}

func TestNewPostgres_InvalidDSN(t *testing.T) {
	_, err := NewPostgres(context.Background(), config.PostgresConfig{DSN: "postgres://%zz"}, zap.NewNop())
	assert.Error(t, err)
}

func TestNilPostgres(t *testing.T) {
	var pg *Postgres
	assert.Nil(t, pg.PoolHandle())
	assert.Error(t, pg.Ping(context.Background()))
	pg.Close()
}

func TestNewRedis_EmptyAddr(t *testing.T) {
	r := NewRedis(context.Background(), config.RedisConfig{}, zap.NewNop())
	assert.Nil(t, r.Client)
	assert.Error(t, r.Ping(context.Background()))
	r.Close()
}

func TestRedis_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := &Redis{Client: client}

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, r.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
	r.Close()
}
