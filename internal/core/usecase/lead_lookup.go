package usecase

import (
	"context"
	"fmt"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

// findLead ищет лид на доске сессии, при промахе перечитывает список из API.
func findLead(ctx context.Context, leads port.LeadAPIPort, board *LeadBoard, session domain.Session, leadID int64) (domain.Lead, error) {
	if lead, ok := board.Get(session.ID, leadID); ok {
		return lead, nil
	}

	fresh, err := leads.GetMyLeads(ctx, session.Token)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("failed to load leads: %w", err)
	}
	board.Replace(session.ID, fresh)

	if lead, ok := board.Get(session.ID, leadID); ok {
		return lead, nil
	}
	return domain.Lead{}, domain.ErrLeadNotFound
}
