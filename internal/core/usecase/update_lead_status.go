package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type UpdateLeadStatusUseCase struct {
	leads    port.LeadAPIPort
	board    *LeadBoard
	journal  port.LeadJournalPort
	events   port.LeadEventsPort
	notifier port.NotifierPort
	now      func() time.Time
}

func NewUpdateLeadStatusUseCase(
	leads port.LeadAPIPort,
	board *LeadBoard,
	journal port.LeadJournalPort,
	events port.LeadEventsPort,
	notifier port.NotifierPort,
) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{
		leads:    leads,
		board:    board,
		journal:  journal,
		events:   events,
		notifier: notifier,
		now:      time.Now,
	}
}

// Execute проверяет переход по графу, применяет его оптимистично и вызывает API.
// При ошибке API лид возвращается к снимку.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, session domain.Session, leadID int64, proposed domain.LeadStatus, details string) (*domain.Lead, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateLeadStatus",
		"lead_id":  leadID,
		"proposed": string(proposed),
	})

	ucLogger.Info("Use case started", nil)

	// --- Шаг 1: проверки до любых изменений ---
	lead, err := findLead(ctx, uc.leads, uc.board, session, leadID)
	if err != nil {
		ucLogger.Warn("Lead is not available", port.Fields{"error": err.Error()})
		return nil, err
	}

	if proposed == lead.Status {
		ucLogger.Info("Status unchanged, nothing to do", nil)
		return &lead, nil
	}
	if !domain.CanTransition(lead.Status, proposed) {
		ucLogger.Warn("Illegal transition rejected", port.Fields{"current": string(lead.Status)})
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, lead.Status, proposed)
	}
	if proposed == domain.LeadStatusPaid {
		ucLogger.Warn("Manual transition to PAID rejected", nil)
		return nil, domain.ErrPaymentRequired
	}

	var agentID int64
	if proposed == domain.LeadStatusAssigned {
		agentID, err = strconv.ParseInt(session.User.ID, 10, 64)
		if err != nil {
			ucLogger.Warn("Session user id is not a numeric agent id", port.Fields{"user_id": session.User.ID})
			return nil, fmt.Errorf("%w: agent id %q is not numeric", domain.ErrValidation, session.User.ID)
		}
	}

	// --- Шаг 2: оптимистичное применение ---
	before, after, err := uc.board.Transition(session.ID, leadID, proposed)
	if err != nil {
		ucLogger.Warn("Transition lost a race with another update", port.Fields{"error": err.Error()})
		return nil, err
	}
	uc.notify(ctx, port.EventLeadUpdated, session.User.ID, after)

	// --- Шаг 3: удаленный вызов ---
	var remote *domain.Lead
	switch proposed {
	case domain.LeadStatusVerified:
		remote, err = uc.leads.VerifyLead(ctx, session.Token, leadID, details)
	case domain.LeadStatusAssigned:
		remote, err = uc.leads.AssignLead(ctx, session.Token, leadID, agentID)
	default:
		remote, err = uc.leads.UpdateLeadStatus(ctx, session.Token, domain.LeadStatusChange{LeadID: leadID, Status: proposed})
	}

	if err != nil {
		// --- Шаг 4а: компенсирующее действие ---
		reverted := uc.board.RevertIf(session.ID, before, proposed)
		ucLogger.Error("Remote status update failed, local change reverted", err, port.Fields{"reverted": reverted})
		uc.record(ctx, ucLogger, domain.LeadTransitionRecord{
			LeadID:     leadID,
			FromStatus: before.Status,
			ToStatus:   proposed,
			ActorID:    session.User.ID,
			Reverted:   true,
			Reason:     err.Error(),
			OccurredAt: uc.now(),
		})
		if reverted {
			uc.notify(ctx, port.EventLeadReverted, session.User.ID, before)
		}
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}

	// --- Шаг 4б: фиксация ---
	final := after
	if remote != nil && remote.Status != "" {
		final = *remote
		uc.board.Put(session.ID, final)
	}

	occurredAt := uc.now()
	uc.record(ctx, ucLogger, domain.LeadTransitionRecord{
		LeadID:     leadID,
		FromStatus: before.Status,
		ToStatus:   final.Status,
		ActorID:    session.User.ID,
		OccurredAt: occurredAt,
	})

	if uc.events != nil {
		event := domain.LeadStatusChangedEvent{
			LeadID:     leadID,
			PropertyID: final.PropertyID,
			FromStatus: before.Status,
			ToStatus:   final.Status,
			ActorID:    session.User.ID,
			OccurredAt: occurredAt,
		}
		if err := uc.events.PublishStatusChanged(ctx, event); err != nil {
			ucLogger.Warn("Failed to publish lead status event", port.Fields{"error": err.Error()})
		}
	}
	uc.notify(ctx, port.EventLeadUpdated, session.User.ID, final)

	ucLogger.Info("Use case finished successfully", port.Fields{"status": string(final.Status)})
	return &final, nil
}

func (uc *UpdateLeadStatusUseCase) record(ctx context.Context, logger port.LoggerPort, record domain.LeadTransitionRecord) {
	if uc.journal == nil {
		return
	}
	if err := uc.journal.Record(ctx, record); err != nil {
		logger.Warn("Failed to write lead journal", port.Fields{"error": err.Error()})
	}
}

func (uc *UpdateLeadStatusUseCase) notify(ctx context.Context, eventType, userID string, lead domain.Lead) {
	if uc.notifier == nil || userID == "" {
		return
	}
	uc.notifier.Notify(ctx, port.UserEvent{Type: eventType, UserID: userID, Data: lead})
}
