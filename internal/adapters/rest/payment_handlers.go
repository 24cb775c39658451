package rest

import (
	"net/http"
)

// PaymentSuccess - возврат с платежной страницы. Без session_id запрос отклоняется.
func (h *Handlers) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "PaymentSuccess")

	confirmation, err := h.uc.ConfirmPayment.Execute(r.Context(), session, r.URL.Query().Get("session_id"))
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := paymentConfirmationResponse{
		SessionID: confirmation.SessionID,
		Dashboard: toDashboard(confirmation.Dashboard),
	}
	if confirmation.Leads != nil {
		resp.Leads = toLeadRows(confirmation.Leads)
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

func (h *Handlers) PaymentCancel(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":   "cancelled",
		"message":  "Payment was cancelled. You have not been charged.",
		"redirect": "/pricing",
	})
}
