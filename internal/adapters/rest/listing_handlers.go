package rest

import (
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) MyListings(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "MyListings")

	items, err := h.uc.ListMyProperties.Execute(r.Context(), session)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyCards(items))
}

func (h *Handlers) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "CreateListing")

	var input domain.PropertyInput
	if err := decodeJSON(r, &input); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.uc.CreateProperty.Execute(r.Context(), session, input)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, toPropertyDetail(property))
}

func (h *Handlers) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "UpdateListing")

	var input domain.PropertyInput
	if err := decodeJSON(r, &input); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.uc.UpdateProperty.Execute(r.Context(), session, chi.URLParam(r, "id"), input)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyDetail(property))
}

func (h *Handlers) DeleteListing(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "DeleteListing")

	if err := h.uc.DeleteProperty.Execute(r.Context(), session, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateFSBOListing - объявление собственника с последующей оплатой размещения.
// Если оформление оплаты не удалось, объявление остается, а в ответе есть ошибка.
func (h *Handlers) CreateFSBOListing(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "CreateFSBOListing")

	var input domain.FSBOListingInput
	if err := decodeJSON(r, &input); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, checkout, err := h.uc.CreateFSBOListing.Execute(r.Context(), session, input, h.returnURLs())
	if property == nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := fsboResponse{Property: toPropertyDetail(property)}
	if err != nil {
		logger.Error("FSBO listing created but checkout failed", err, port.Fields{"property_id": property.ID})
		_, resp.Error = statusFor(err)
		RespondWithJSON(w, http.StatusBadGateway, resp)
		return
	}
	if checkout != nil {
		resp.Checkout = &checkoutResponse{SessionID: checkout.SessionID, PaymentURL: checkout.PaymentURL}
	}
	RespondWithJSON(w, http.StatusCreated, resp)
}
