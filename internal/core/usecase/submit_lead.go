package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type SubmitLeadUseCase struct {
	leads  port.LeadAPIPort
	events port.LeadEventsPort

	mu       sync.Mutex
	inFlight map[string]struct{}
	now      func() time.Time
}

func NewSubmitLeadUseCase(leads port.LeadAPIPort, events port.LeadEventsPort) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		leads:    leads,
		events:   events,
		inFlight: make(map[string]struct{}),
		now:      time.Now,
	}
}

// Execute отправляет форму захвата лида. Пока предыдущая отправка той же формы
// не завершилась, повторная отклоняется с ErrSubmissionInFlight.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, sessionKey string, token string, submission domain.LeadSubmission) (*domain.Lead, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SubmitLead",
		"property_id": submission.PropertyID,
	})

	ucLogger.Info("Use case started", nil)

	submission = submission.WithDefaults()
	if err := validateInput(submission); err != nil {
		ucLogger.Warn("Lead form is invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	key := sessionKey + "|" + submission.PropertyID
	if !uc.acquire(key) {
		ucLogger.Warn("Duplicate submission while previous one is in flight", nil)
		return nil, domain.ErrSubmissionInFlight
	}
	defer uc.release(key)

	lead, err := uc.leads.SubmitLead(ctx, token, submission)
	if err != nil {
		ucLogger.Error("Remote lead submission failed", err, nil)
		return nil, err
	}

	if uc.events != nil {
		event := domain.LeadSubmittedEvent{
			LeadID:      lead.ID,
			PropertyID:  submission.PropertyID,
			LeadType:    submission.LeadType,
			Urgency:     string(submission.Urgency),
			SubmittedAt: uc.now(),
		}
		if err := uc.events.PublishSubmitted(ctx, event); err != nil {
			ucLogger.Warn("Failed to publish lead submitted event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"lead_id": lead.ID})
	return lead, nil
}

func (uc *SubmitLeadUseCase) acquire(key string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inFlight[key]; busy {
		return false
	}
	uc.inFlight[key] = struct{}{}
	return true
}

func (uc *SubmitLeadUseCase) release(key string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	delete(uc.inFlight, key)
}
