package rest

import (
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/constants"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	logger, _, _ := handlerContext(r, "Login")

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.uc.Login.Execute(r.Context(), domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	setSessionCookie(w, session, h.cookies)
	RespondWithJSON(w, http.StatusOK, toSession(session))
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	logger, _, _ := handlerContext(r, "Register")

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.uc.Register.Execute(r.Context(), domain.Registration{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		UserType:        domain.UserType(req.UserType),
	})
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	// бэкенд может зарегистрировать без выдачи токена
	if session == nil {
		RespondWithJSON(w, http.StatusCreated, registerResponse{RequiresLogin: true})
		return
	}
	setSessionCookie(w, session, h.cookies)
	RespondWithJSON(w, http.StatusCreated, registerResponse{Session: toSession(session)})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	logger, _, _ := handlerContext(r, "Logout")

	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.uc.Logout.Execute(r.Context(), cookie.Value); err != nil {
			logger.Warn("Logout failed, cookie cleared anyway", port.Fields{"error": err.Error()})
		}
	}
	clearSessionCookie(w, h.cookies)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	_, session, _ := handlerContext(r, "Me")
	RespondWithJSON(w, http.StatusOK, toSession(&session))
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "UpdateProfile")

	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.uc.UpdateProfile.Execute(r.Context(), session, domain.ProfileUpdate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, user)
}
