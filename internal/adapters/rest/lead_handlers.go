package rest

import (
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

// ListLeads - таблица лидов агента с фильтром по статусу, поиском и сортировкой.
func (h *Handlers) ListLeads(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "ListLeads")

	q := r.URL.Query()
	view, err := h.uc.ListLeads.Execute(r.Context(), session, domain.LeadListQuery{
		Status: q.Get("status"),
		Search: q.Get("q"),
		SortBy: domain.LeadSortKey(q.Get("sort")),
	})
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, leadListResponse{
		Leads:   toLeadRows(view.Leads),
		Shown:   view.Shown,
		Total:   view.Total,
		Summary: view.Summary(),
	})
}

func (h *Handlers) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "UpdateLeadStatus")

	leadID, err := int64Param(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var req leadStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	proposed, err := domain.ParseLeadStatus(req.Status)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	lead, err := h.uc.UpdateLeadStatus.Execute(r.Context(), session, leadID, proposed, req.VerificationDetails)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toLeadRow(*lead))
}

// PayForLead оформляет оплату лида и возвращает ссылку на платежную страницу.
func (h *Handlers) PayForLead(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "PayForLead")

	leadID, err := int64Param(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	checkout, err := h.uc.PayForLead.Execute(r.Context(), session, leadID, h.returnURLs())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, checkoutResponse{SessionID: checkout.SessionID, PaymentURL: checkout.PaymentURL})
}

func (h *Handlers) LeadHistory(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "LeadHistory")

	leadID, err := int64Param(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	records, err := h.uc.LeadHistory.Execute(r.Context(), session, leadID)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := make([]leadTransitionResponse, len(records))
	for i, rec := range records {
		resp[i] = leadTransitionResponse{
			FromStatus: string(rec.FromStatus),
			ToStatus:   string(rec.ToStatus),
			ActorID:    rec.ActorID,
			Reverted:   rec.Reverted,
			Reason:     rec.Reason,
			OccurredAt: rec.OccurredAt,
		}
	}
	RespondWithJSON(w, http.StatusOK, resp)
}
