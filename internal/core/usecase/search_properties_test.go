package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProperties_Pagination(t *testing.T) {
	api := &fakePropertyAPI{items: make([]domain.PropertySummary, domain.PageSize), total: 13}
	uc := NewSearchPropertiesUseCase(api)

	result := uc.Execute(context.Background(), "client-1", domain.ParseFromLocation("page=2"))

	require.NoError(t, result.Err)
	assert.False(t, result.Stale)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 13, result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestSearchProperties_FailureYieldsEmptyList(t *testing.T) {
	api := &fakePropertyAPI{err: errors.New("boom")}
	uc := NewSearchPropertiesUseCase(api)

	result := uc.Execute(context.Background(), "client-1", domain.PropertyQueryFilter{})

	assert.Error(t, result.Err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestSearchProperties_OlderResponseIsStale(t *testing.T) {
	api := &fakePropertyAPI{release: make(chan struct{}), items: []domain.PropertySummary{{ID: "1"}}, total: 1}
	uc := NewSearchPropertiesUseCase(api)

	first := make(chan domain.ListResult, 1)
	go func() {
		first <- uc.Execute(context.Background(), "client-1", domain.ParseFromLocation("location=Bishan"))
	}()

	require.Eventually(t, func() bool {
		uc.sequencer.mu.Lock()
		defer uc.sequencer.mu.Unlock()
		return len(uc.sequencer.latest) == 1
	}, time.Second, 5*time.Millisecond)

	second := make(chan domain.ListResult, 1)
	go func() {
		second <- uc.Execute(context.Background(), "client-1", domain.ParseFromLocation("location=Yishun"))
	}()

	// первый запрос отменен вторым и считается устаревшим
	select {
	case r := <-first:
		assert.True(t, r.Stale)
	case <-time.After(time.Second):
		t.Fatal("first search was not cancelled")
	}

	close(api.release)
	select {
	case r := <-second:
		assert.False(t, r.Stale)
		require.NoError(t, r.Err)
		assert.Len(t, r.Items, 1)
	case <-time.After(time.Second):
		t.Fatal("second search did not finish")
	}
}

func TestSearchProperties_DifferentClientsDoNotInterfere(t *testing.T) {
	api := &fakePropertyAPI{items: []domain.PropertySummary{{ID: "1"}}, total: 1}
	uc := NewSearchPropertiesUseCase(api)

	a := uc.Execute(context.Background(), "client-a", domain.PropertyQueryFilter{})
	b := uc.Execute(context.Background(), "client-b", domain.PropertyQueryFilter{})

	assert.False(t, a.Stale)
	assert.False(t, b.Stale)
}
