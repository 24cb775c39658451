package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
	"github.com/numanharith/propertyhub-frontend/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

const healthPath = "/healthz"

// NewRouter собирает маршруты сервиса. Вынесен отдельно для тестов.
func NewRouter(handlers *Handlers, resolve usecases_port.ResolveSessionUseCase, allowedOrigins []string, cookies CookieSettings, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(ClientIDMiddleware(cookies))
	r.Use(SessionMiddleware(resolve, cookies))

	r.Get(healthPath, handlers.Health)

	r.Route("/api", func(r chi.Router) {
		// --- публичные роуты ---
		r.Post("/auth/login", handlers.Login)
		r.Post("/auth/register", handlers.Register)
		r.Post("/auth/logout", handlers.Logout)

		r.Get("/properties/search", handlers.SearchProperties)
		r.Post("/properties/search/filters", handlers.ApplyFilters)
		r.Get("/properties/{id}", handlers.PropertyDetails)
		r.Post("/properties/{id}/inquiries", handlers.SubmitInquiry)

		r.Get("/tiers", handlers.ListTiers)
		r.Get("/partners", handlers.ListPartners)
		r.Get("/payments/cancel", handlers.PaymentCancel)

		// --- роуты, требующие входа ---
		r.Group(func(r chi.Router) {
			r.Use(RequireSession)

			r.Get("/auth/me", handlers.Me)
			r.Put("/profile", handlers.UpdateProfile)
			r.Get("/events", handlers.Events)
			r.Get("/payments/success", handlers.PaymentSuccess)
			r.Post("/partners/{id}/refer", handlers.ReferToPartner)

			r.Group(func(r chi.Router) {
				r.Use(RequireUserType(domain.UserTypeAgent, domain.UserTypeOwner))
				r.Get("/dashboard", handlers.Dashboard)
				r.Get("/listings", handlers.MyListings)
				r.Post("/listings", handlers.CreateListing)
				r.Put("/listings/{id}", handlers.UpdateListing)
				r.Delete("/listings/{id}", handlers.DeleteListing)
			})

			r.With(RequireUserType(domain.UserTypeOwner, domain.UserTypeUser)).
				Post("/listings/fsbo", handlers.CreateFSBOListing)

			r.With(RequireUserType(domain.UserTypeAgent, domain.UserTypeUser)).
				Post("/tiers/{id}/subscribe", handlers.SubscribeToTier)

			r.Route("/leads", func(r chi.Router) {
				r.Use(RequireUserType(domain.UserTypeAgent))
				r.Get("/", handlers.ListLeads)
				r.Patch("/{id}/status", handlers.UpdateLeadStatus)
				r.Post("/{id}/pay", handlers.PayForLead)
				r.Get("/{id}/history", handlers.LeadHistory)
			})
		})
	})

	return r
}

func NewServer(listenPort string, router http.Handler, baseLogger port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:    ":" + listenPort,
		Handler: router,
	}
	return &Server{
		httpServer: srv,
		logger:     baseLogger.WithFields(port.Fields{"component": "rest_server"}),
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
