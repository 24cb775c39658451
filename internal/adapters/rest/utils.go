package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

type validationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// writeDomainError переводит ошибку use case в HTTP-статус и текст баннера.
func writeDomainError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		RespondWithJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
			Error:  "Please correct the highlighted fields",
			Fields: validationErr.Fields,
		})
		return
	}

	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", err, port.Fields{"status_code": status})
	} else {
		logger.Warn("Request rejected", port.Fields{"status_code": status, "error": err.Error()})
	}
	WriteJSONError(w, status, message)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Please sign in to continue"
	case errors.Is(err, domain.ErrListingLimitReached):
		return http.StatusForbidden, "You have reached the active listing limit of your plan. Upgrade to add more listings."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have access to this action"
	case errors.Is(err, domain.ErrLeadNotFound):
		return http.StatusNotFound, "Lead not found"
	case errors.Is(err, domain.ErrPropertyNotFound):
		return http.StatusNotFound, "Property not found"
	case errors.Is(err, domain.ErrTierNotFound):
		return http.StatusNotFound, "Plan not found"
	case errors.Is(err, domain.ErrPaymentRequired):
		return http.StatusPaymentRequired, "A lead becomes paid only after payment is confirmed"
	case errors.Is(err, domain.ErrIllegalTransition):
		return http.StatusConflict, "This status change is not allowed"
	case errors.Is(err, domain.ErrPayNotOffered):
		return http.StatusConflict, "Payment is available only for assigned leads"
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict, "Your request is already being sent"
	case errors.Is(err, domain.ErrInvalidPaymentAccess):
		return http.StatusBadRequest, "Invalid payment confirmation link"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "Invalid input"
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 && apiErr.Message != "" {
			return http.StatusBadRequest, apiErr.Message
		}
		return http.StatusBadGateway, "The marketplace service is unavailable, please try again later"
	}
	return http.StatusInternalServerError, "Something went wrong"
}

func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	return decoder.Decode(dst)
}

func int64Param(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
