package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type ListLeadsUseCase struct {
	leads port.LeadAPIPort
	board *LeadBoard
}

func NewListLeadsUseCase(leads port.LeadAPIPort, board *LeadBoard) *ListLeadsUseCase {
	return &ListLeadsUseCase{leads: leads, board: board}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, session domain.Session, query domain.LeadListQuery) (*domain.LeadListView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListLeads",
		"status":   query.Status,
		"sort_by":  string(query.SortBy),
	})

	ucLogger.Info("Use case started", nil)

	fresh, err := uc.leads.GetMyLeads(ctx, session.Token)
	if err != nil {
		ucLogger.Error("Failed to load leads", err, nil)
		return nil, err
	}
	uc.board.Replace(session.ID, fresh)

	view := domain.FilterLeads(fresh, query)

	ucLogger.Info("Use case finished successfully", port.Fields{"shown": view.Shown, "total": view.Total})
	return &view, nil
}
