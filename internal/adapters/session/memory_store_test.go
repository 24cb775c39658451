package session_adapter

import (
	"context"
	"testing"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := &domain.Session{
		ID:        "s1",
		Token:     "tok",
		User:      domain.User{ID: "42", UserType: domain.UserTypeAgent},
		Dashboard: &domain.Dashboard{Usage: domain.Usage{ActiveListingsCount: 3}},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)

	// изменение полученной копии не влияет на хранилище
	got.Dashboard.Usage.ActiveListingsCount = 99
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Dashboard.Usage.ActiveListingsCount)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryStore_ExpiredSessionIsGone(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), &domain.Session{ID: "s1", ExpiresAt: now.Add(time.Minute)}))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
