package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Ошибки, которые возвращаются из Use Cases и адаптеров.
var (
	ErrIllegalTransition    = errors.New("illegal lead status transition")
	ErrPaymentRequired      = errors.New("lead can only become paid after payment confirmation")
	ErrPayNotOffered        = errors.New("payment is offered only for assigned leads")
	ErrLeadNotFound         = errors.New("lead not found")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrTierNotFound         = errors.New("tier not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrValidation           = errors.New("validation failed")
	ErrListingLimitReached  = errors.New("active listing limit reached for current tier")
	ErrSubmissionInFlight   = errors.New("submission already in progress")
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidPaymentAccess = errors.New("invalid payment confirmation access")
)

// APIError - ответ удаленного API с неуспешным статусом.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketplace api returned status %d: %s", e.StatusCode, e.Message)
}

// Unwrap позволяет проверять 401/403 через errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	}
	return nil
}

// ValidationError содержит сообщения по полям формы.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
