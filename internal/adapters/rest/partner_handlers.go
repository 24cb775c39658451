package rest

import (
	"net/http"
	"time"
)

func (h *Handlers) ListPartners(w http.ResponseWriter, r *http.Request) {
	logger, _, _ := handlerContext(r, "ListPartners")

	partners, err := h.uc.ListPartners.Execute(r.Context())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := make([]partnerResponse, len(partners))
	for i, p := range partners {
		resp[i] = partnerResponse{
			ID:          p.ID,
			Name:        p.Name,
			ServiceType: p.ServiceType,
			Description: p.Description,
			ContactInfo: p.ContactInfo,
			Active:      p.Active,
		}
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

type referralResponse struct {
	ID             int64     `json:"id"`
	PartnerID      int64     `json:"partnerId"`
	ReferredUserID int64     `json:"referredUserId"`
	Status         string    `json:"status"`
	ReferralFee    float64   `json:"referralFee"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (h *Handlers) ReferToPartner(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "ReferToPartner")

	partnerID, err := int64Param(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid partner id")
		return
	}

	var req referralRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.uc.ReferToPartner.Execute(r.Context(), session, partnerID, req.ReferredUserID)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, referralResponse{
		ID:             tx.ID,
		PartnerID:      tx.PartnerID,
		ReferredUserID: tx.ReferredUserID,
		Status:         string(tx.Status),
		ReferralFee:    tx.ReferralFee,
		CreatedAt:      tx.CreatedAt,
	})
}
