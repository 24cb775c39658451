package marketplace_api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

func (c *Client) InitiateCheckout(ctx context.Context, token string, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	logger := c.logger(ctx, "InitiateCheckout").WithFields(port.Fields{"payment_type": string(req.PaymentType), "item_id": req.ItemID})

	body := checkoutRequest{
		PaymentType: string(req.PaymentType),
		ItemID:      req.ItemID,
		Amount:      req.Amount,
		SuccessURL:  req.SuccessURL,
		CancelURL:   req.CancelURL,
	}

	var resp checkoutResponse
	if err := c.call(ctx, logger, http.MethodPost, "/billing/checkout", token, body, &resp, nil); err != nil {
		return nil, err
	}
	if resp.PaymentURL == "" {
		err := fmt.Errorf("checkout response has no payment url")
		logger.Error("Invalid checkout response", err, nil)
		return nil, err
	}

	logger.Info("Checkout session created", port.Fields{"checkout_session": resp.SessionID})
	return &domain.CheckoutSession{SessionID: resp.SessionID, PaymentURL: resp.PaymentURL}, nil
}
