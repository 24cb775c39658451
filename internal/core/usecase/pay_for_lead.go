package usecase

import (
	"context"
	"strconv"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type PayForLeadUseCase struct {
	leads   port.LeadAPIPort
	billing port.BillingAPIPort
	board   *LeadBoard
}

func NewPayForLeadUseCase(leads port.LeadAPIPort, billing port.BillingAPIPort, board *LeadBoard) *PayForLeadUseCase {
	return &PayForLeadUseCase{leads: leads, billing: billing, board: board}
}

// Execute запускает оплату лида. Статус локально не меняется, PAID придет
// после подтверждения оплаты и перечитывания списка.
func (uc *PayForLeadUseCase) Execute(ctx context.Context, session domain.Session, leadID int64, returnURLs domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "PayForLead",
		"lead_id":  leadID,
	})

	ucLogger.Info("Use case started", nil)

	lead, err := findLead(ctx, uc.leads, uc.board, session, leadID)
	if err != nil {
		ucLogger.Warn("Lead is not available", port.Fields{"error": err.Error()})
		return nil, err
	}
	if !lead.CanPay() {
		ucLogger.Warn("Payment is not offered for lead", port.Fields{"status": string(lead.Status)})
		return nil, domain.ErrPayNotOffered
	}

	checkout, err := uc.billing.InitiateCheckout(ctx, session.Token, domain.CheckoutRequest{
		PaymentType: domain.PaymentTypeLeadCharge,
		ItemID:      strconv.FormatInt(lead.ID, 10),
		SuccessURL:  returnURLs.SuccessURL,
		CancelURL:   returnURLs.CancelURL,
	})
	if err != nil {
		ucLogger.Error("Failed to initiate checkout", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"checkout_session": checkout.SessionID})
	return checkout, nil
}
