package rest

import (
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// SearchProperties - страница выдачи. Состояние фильтра берется только из строки запроса.
func (h *Handlers) SearchProperties(w http.ResponseWriter, r *http.Request) {
	filter := domain.ParseFromLocation(r.URL.RawQuery)

	result := h.uc.SearchProperties.Execute(r.Context(), contextkeys.ClientIDFromContext(r.Context()), filter)
	if result.Stale {
		WriteJSONError(w, http.StatusConflict, "A newer search replaced this one")
		return
	}

	resp := searchResponse{
		Items:      toPropertyCards(result.Items),
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
		Query:      domain.Serialize(filter),
		Summary:    domain.SearchSummary(filter),
	}
	if result.Err != nil {
		_, message := statusFor(result.Err)
		resp.Error = message
		RespondWithJSON(w, http.StatusBadGateway, resp)
		return
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// ApplyFilters сливает форму фильтров с текущим запросом и перенаправляет
// на каноническую ссылку выдачи с первой страницы.
func (h *Handlers) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid form")
		return
	}

	current := domain.ParseFromLocation(r.URL.RawQuery)
	patch := domain.FilterPatch{}
	for key, values := range r.PostForm {
		if len(values) > 0 {
			patch[key] = values[0]
		}
	}

	next := domain.ApplyFilterChange(current, patch)
	http.Redirect(w, r, "/api/properties/search?"+domain.Serialize(next), http.StatusSeeOther)
}

func (h *Handlers) PropertyDetails(w http.ResponseWriter, r *http.Request) {
	logger, _, _ := handlerContext(r, "PropertyDetails")

	property, err := h.uc.PropertyDetails.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyDetail(property))
}

// SubmitInquiry - форма лида на странице объекта. Доступна и анонимам.
func (h *Handlers) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	logger, session, ok := handlerContext(r, "SubmitInquiry")

	var req inquiryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token := ""
	if ok {
		token = session.Token
	}

	lead, err := h.uc.SubmitLead.Execute(r.Context(), contextkeys.ClientIDFromContext(r.Context()), token, domain.LeadSubmission{
		PropertyID:           chi.URLParam(r, "id"),
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		Message:              req.Message,
		LeadType:             domain.LeadType(req.LeadType),
		PreferredContactTime: req.PreferredContactTime,
		Urgency:              domain.LeadUrgency(req.Urgency),
	})
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := map[string]interface{}{"status": "submitted"}
	if lead != nil && lead.ID != 0 {
		resp["leadId"] = lead.ID
	}
	RespondWithJSON(w, http.StatusCreated, resp)
}
