package rest

import (
	"net/http"
)

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "Dashboard")

	dashboard, _, err := h.uc.Dashboard.Execute(r.Context(), session)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toDashboard(dashboard))
}

// ListTiers - страница тарифов. Для анонима подписи кнопок считаются без текущего тарифа.
func (h *Handlers) ListTiers(w http.ResponseWriter, r *http.Request) {
	logger, session, ok := handlerContext(r, "ListTiers")

	var current = &session
	if !ok {
		current = nil
	}

	options, err := h.uc.ListTiers.Execute(r.Context(), current)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := make([]tierOptionResponse, len(options))
	for i, opt := range options {
		resp[i] = tierOptionResponse{
			tierResponse: toTier(opt.Tier),
			Action:       string(opt.Action),
			IsUpgrade:    opt.IsUpgrade,
		}
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

func (h *Handlers) SubscribeToTier(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "SubscribeToTier")

	tierID, err := int64Param(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid plan id")
		return
	}

	dashboard, err := h.uc.SubscribeToTier.Execute(r.Context(), session, tierID)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toDashboard(dashboard))
}
