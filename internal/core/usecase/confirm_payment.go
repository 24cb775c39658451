package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type ConfirmPaymentUseCase struct {
	leads    port.LeadAPIPort
	sessions *SessionService
	board    *LeadBoard
	notifier port.NotifierPort
}

func NewConfirmPaymentUseCase(leads port.LeadAPIPort, sessions *SessionService, board *LeadBoard, notifier port.NotifierPort) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{leads: leads, sessions: sessions, board: board, notifier: notifier}
}

// Execute обрабатывает возврат со страницы оплаты: перечитывает кабинет и лиды.
// Ошибки перечитывания не отменяют подтверждение, данные обновятся позже.
func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, session domain.Session, paymentSessionID string) (*domain.PaymentConfirmation, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "ConfirmPayment",
		"payment_session": paymentSessionID,
	})

	ucLogger.Info("Use case started", nil)

	if paymentSessionID == "" {
		ucLogger.Warn("Payment success page opened without session_id", nil)
		return nil, domain.ErrInvalidPaymentAccess
	}

	result := &domain.PaymentConfirmation{SessionID: paymentSessionID, Dashboard: session.Dashboard}

	refreshed, err := uc.sessions.refreshDashboard(ctx, session.ID)
	if err != nil {
		ucLogger.Warn("Dashboard refresh after payment failed", port.Fields{"error": err.Error()})
	} else {
		result.Dashboard = refreshed.Dashboard
	}

	if session.User.UserType == domain.UserTypeAgent {
		fresh, err := uc.leads.GetMyLeads(ctx, session.Token)
		if err != nil {
			ucLogger.Warn("Lead refresh after payment failed", port.Fields{"error": err.Error()})
		} else {
			changed := uc.board.Replace(session.ID, fresh)
			result.Leads = fresh
			for _, lead := range changed {
				if uc.notifier != nil {
					uc.notifier.Notify(ctx, port.UserEvent{Type: port.EventLeadUpdated, UserID: session.User.ID, Data: lead})
				}
			}
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"leads_count": len(result.Leads)})
	return result, nil
}
