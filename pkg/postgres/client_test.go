package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	_, err := Config{}.poolConfig()
	assert.Error(t, err)

	pc, err := Config{
		DatabaseURL:     "postgres://u:p@localhost:5432/propertyhub?sslmode=disable",
		MaxConns:        7,
		MaxConnLifetime: time.Minute,
	}.poolConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(7), pc.MaxConns)
	assert.Equal(t, time.Minute, pc.MaxConnLifetime)
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.ErrorContains(t, err, "DATABASE_URL")
}
