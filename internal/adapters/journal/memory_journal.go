package journal_adapter

import (
	"context"
	"sync"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

// maxRecordsPerLead - старые записи отбрасываются.
const maxRecordsPerLead = 50

// MemoryJournal - журнал переходов в памяти, используется без DATABASE_URL.
type MemoryJournal struct {
	mu      sync.RWMutex
	records map[int64][]domain.LeadTransitionRecord
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{records: make(map[int64][]domain.LeadTransitionRecord)}
}

func (j *MemoryJournal) Record(ctx context.Context, record domain.LeadTransitionRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	list := append(j.records[record.LeadID], record)
	if len(list) > maxRecordsPerLead {
		list = list[len(list)-maxRecordsPerLead:]
	}
	j.records[record.LeadID] = list
	return nil
}

// History - записи в порядке добавления.
func (j *MemoryJournal) History(ctx context.Context, leadID int64) ([]domain.LeadTransitionRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]domain.LeadTransitionRecord, len(j.records[leadID]))
	copy(out, j.records[leadID])
	return out, nil
}
