package port

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

// LeadEventsPort публикует события жизненного цикла лида для внешних подписчиков.
type LeadEventsPort interface {
	PublishStatusChanged(ctx context.Context, event domain.LeadStatusChangedEvent) error
	PublishSubmitted(ctx context.Context, event domain.LeadSubmittedEvent) error
}

// LeadJournalPort хранит историю переходов, включая откаты.
type LeadJournalPort interface {
	Record(ctx context.Context, record domain.LeadTransitionRecord) error
	History(ctx context.Context, leadID int64) ([]domain.LeadTransitionRecord, error)
}
