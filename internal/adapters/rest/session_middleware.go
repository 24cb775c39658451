package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/constants"
	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
	"github.com/numanharith/propertyhub-frontend/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

// clientIDMaxAge - cookie клиента живет дольше сессии входа
const clientIDMaxAge = 365 * 24 * time.Hour

// CookieSettings - общие атрибуты cookie сервиса.
type CookieSettings struct {
	Secure bool
}

// ClientIDMiddleware выдает браузеру постоянный идентификатор. Он ключует
// последовательность поисковых запросов и защиту формы от повторной отправки
// для анонимных посетителей.
func ClientIDMiddleware(settings CookieSettings) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := ""
			if cookie, err := r.Cookie(constants.ClientCookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					clientID = cookie.Value
				}
			}
			if clientID == "" {
				clientID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     constants.ClientCookieName,
					Value:    clientID,
					Path:     "/",
					MaxAge:   int(clientIDMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   settings.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(contextkeys.ContextWithClientID(r.Context(), clientID)))
		})
	}
}

// SessionMiddleware кладет снимок сессии в контекст, если cookie указывает на
// действующую сессию. Для анонимного запроса контекст не меняется.
func SessionMiddleware(resolve usecases_port.ResolveSessionUseCase, settings CookieSettings) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := resolve.Execute(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					clearSessionCookie(w, settings)
				} else {
					contextkeys.LoggerFromContext(r.Context()).Warn("Failed to resolve session", port.Fields{"error": err.Error()})
				}
				next.ServeHTTP(w, r)
				return
			}

			logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"user_id": session.User.ID})
			ctx := contextkeys.ContextWithSession(r.Context(), *session)
			ctx = contextkeys.ContextWithLogger(ctx, logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession отклоняет анонимные запросы.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := contextkeys.SessionFromContext(r.Context()); !ok {
			WriteJSONError(w, http.StatusUnauthorized, "Please sign in to continue")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUserType пропускает только перечисленные типы пользователей.
func RequireUserType(allowed ...domain.UserType) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := contextkeys.SessionFromContext(r.Context())
			if !ok {
				WriteJSONError(w, http.StatusUnauthorized, "Please sign in to continue")
				return
			}
			for _, t := range allowed {
				if session.User.UserType == t {
					next.ServeHTTP(w, r)
					return
				}
			}
			WriteJSONError(w, http.StatusForbidden, "This page is not available for your account type")
		})
	}
}

func setSessionCookie(w http.ResponseWriter, session *domain.Session, settings CookieSettings) {
	cookie := &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if !session.ExpiresAt.IsZero() {
		cookie.Expires = session.ExpiresAt
	}
	http.SetCookie(w, cookie)
}

func clearSessionCookie(w http.ResponseWriter, settings CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
