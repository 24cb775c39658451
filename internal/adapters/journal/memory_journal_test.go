package journal_adapter

import (
	"context"
	"testing"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryJournal_KeepsOrderAndCap(t *testing.T) {
	journal := NewMemoryJournal()
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < maxRecordsPerLead+5; i++ {
		require.NoError(t, journal.Record(ctx, domain.LeadTransitionRecord{
			LeadID:     1,
			FromStatus: domain.LeadStatusPendingVerification,
			ToStatus:   domain.LeadStatusVerified,
			OccurredAt: start.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, journal.Record(ctx, domain.LeadTransitionRecord{LeadID: 2, Reverted: true}))

	history, err := journal.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, maxRecordsPerLead)
	assert.Equal(t, start.Add(5*time.Minute), history[0].OccurredAt)

	other, err := journal.History(ctx, 2)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.True(t, other[0].Reverted)

	empty, err := journal.History(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
