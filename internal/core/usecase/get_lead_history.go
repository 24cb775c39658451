package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type GetLeadHistoryUseCase struct {
	leads   port.LeadAPIPort
	board   *LeadBoard
	journal port.LeadJournalPort
}

func NewGetLeadHistoryUseCase(leads port.LeadAPIPort, board *LeadBoard, journal port.LeadJournalPort) *GetLeadHistoryUseCase {
	return &GetLeadHistoryUseCase{leads: leads, board: board, journal: journal}
}

// Execute возвращает журнал переходов лида, доступный только его агенту.
func (uc *GetLeadHistoryUseCase) Execute(ctx context.Context, session domain.Session, leadID int64) ([]domain.LeadTransitionRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetLeadHistory",
		"lead_id":  leadID,
	})

	ucLogger.Info("Use case started", nil)

	if _, err := findLead(ctx, uc.leads, uc.board, session, leadID); err != nil {
		ucLogger.Warn("Lead is not available", port.Fields{"error": err.Error()})
		return nil, err
	}

	records, err := uc.journal.History(ctx, leadID)
	if err != nil {
		ucLogger.Error("Failed to read lead journal", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"records": len(records)})
	return records, nil
}
