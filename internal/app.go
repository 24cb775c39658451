package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	journal_adapter "github.com/numanharith/propertyhub-frontend/internal/adapters/journal"
	token_adapter "github.com/numanharith/propertyhub-frontend/internal/adapters/jwt"
	logger_adapter "github.com/numanharith/propertyhub-frontend/internal/adapters/logger"
	"github.com/numanharith/propertyhub-frontend/internal/adapters/marketplace_api"
	"github.com/numanharith/propertyhub-frontend/internal/adapters/notifier"
	postgres_adapter "github.com/numanharith/propertyhub-frontend/internal/adapters/postgres"
	rabbitmq_adapter "github.com/numanharith/propertyhub-frontend/internal/adapters/rabbitmq"
	"github.com/numanharith/propertyhub-frontend/internal/adapters/rest"
	session_adapter "github.com/numanharith/propertyhub-frontend/internal/adapters/session"
	"github.com/numanharith/propertyhub-frontend/internal/configs"
	"github.com/numanharith/propertyhub-frontend/internal/constants"
	"github.com/numanharith/propertyhub-frontend/internal/contracts"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
	"github.com/numanharith/propertyhub-frontend/internal/core/usecase"
	fluentlogger "github.com/numanharith/propertyhub-frontend/pkg/fluent_logger"
	"github.com/numanharith/propertyhub-frontend/pkg/postgres"
	"github.com/numanharith/propertyhub-frontend/pkg/rabbitmq/rabbitmq_common"
	"github.com/numanharith/propertyhub-frontend/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	// необязательные компоненты, nil если выключены в конфигурации
	dbPool         *pgxpool.Pool
	redisClient    *redis.Client
	connManager    *rabbitmq_common.ConnectionManager
	publisher      *rabbitmq_producer.Publisher
	eventsListener *rabbitmq_adapter.LeadEventsListener

	notifier     *notifier.SSENotifier
	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ ---
	instanceID := uuid.New().String()
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
		"instance_id":  instanceID,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{config: appConfig, logger: appLogger, fluentClient: fluentClient}
	ctx := context.Background()

	// --- 3. ИНФРАСТРУКТУРА ---
	payloadValidator, err := contracts.NewValidator()
	if err != nil {
		appLogger.Error("Failed to compile JSON schemas", err, nil)
		return nil, fmt.Errorf("failed to compile json schemas: %w", err)
	}

	apiClient := marketplace_api.NewClient(appConfig.ApiClient.BaseURL, appConfig.ApiClient.Timeout)
	appLogger.Info("Marketplace API client configured.", port.Fields{"base_url": appConfig.ApiClient.BaseURL})

	var sessionStore port.SessionStorePort
	if appConfig.Session.RedisURL != "" {
		redisClient, err := session_adapter.NewRedisClient(ctx, appConfig.Session.RedisURL)
		if err != nil {
			appLogger.Error("Failed to connect to Redis", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		application.redisClient = redisClient
		store, err := session_adapter.NewRedisStore(redisClient)
		if err != nil {
			application.closeResources()
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		sessionStore = store
		appLogger.Info("Redis session store initialized.", nil)
	} else {
		sessionStore = session_adapter.NewMemoryStore()
		appLogger.Info("In-memory session store initialized.", nil)
	}

	var journal port.LeadJournalPort
	if appConfig.Database.URL != "" {
		dbPool, err := postgres.NewClient(ctx, postgres.Config{
			DatabaseURL:     appConfig.Database.URL,
			MaxConns:        int32(appConfig.Database.MaxConns),
			MaxConnLifetime: appConfig.Database.MaxConnLifetime,
		})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		application.dbPool = dbPool
		pgJournal, err := postgres_adapter.NewPostgresLeadJournal(ctx, dbPool)
		if err != nil {
			appLogger.Error("Failed to create postgres lead journal", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to create postgres lead journal: %w", err)
		}
		journal = pgJournal
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)
	} else {
		journal = journal_adapter.NewMemoryJournal()
		appLogger.Info("In-memory lead journal initialized.", nil)
	}

	sseNotifier := notifier.NewSSENotifier(baseLogger)
	application.notifier = sseNotifier
	appLogger.Info("SSE Notifier initialized.", nil)

	// интерфейс остается nil, если брокер выключен
	var leadEvents port.LeadEventsPort
	if appConfig.RabbitMQ.Enabled {
		rabbitCfg := rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL}
		connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
		connManager, err := rabbitmq_common.NewConnectionManager(rabbitCfg, connManagerBridge)
		if err != nil {
			appLogger.Error("Failed to create connection manager", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to create connection manager: %w", err)
		}
		application.connManager = connManager
		appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

		publisher, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitCfg,
			ExchangeName:             constants.ExchangeName,
			ExchangeType:             constants.ExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_publisher"})),
		}, connManager)
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ publisher", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to create rabbitmq publisher: %w", err)
		}
		application.publisher = publisher

		eventsAdapter, err := rabbitmq_adapter.NewLeadEventsAdapter(publisher, payloadValidator, instanceID)
		if err != nil {
			application.closeResources()
			return nil, fmt.Errorf("failed to create lead events adapter: %w", err)
		}
		leadEvents = eventsAdapter

		listener, err := rabbitmq_adapter.NewLeadEventsListener(connManager, appConfig.RabbitMQ.URL, sseNotifier, payloadValidator, instanceID, baseLogger)
		if err != nil {
			appLogger.Error("Failed to create lead events listener", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to create lead events listener: %w", err)
		}
		application.eventsListener = listener
		appLogger.Info("RabbitMQ publisher and listener initialized.", nil)
	}

	// --- 4. USE CASES ---
	sessions := usecase.NewSessionService(sessionStore, token_adapter.NewTokenInspector(), apiClient, sseNotifier, appConfig.Session.TTL)
	board := usecase.NewLeadBoard(appConfig.Session.TTL)
	sessions.OnSessionEnded(board.Forget)

	useCases := rest.UseCases{
		Login:          usecase.NewLoginUseCase(apiClient, sessions),
		Register:       usecase.NewRegisterUseCase(apiClient, sessions),
		Logout:         usecase.NewLogoutUseCase(sessions, board),
		ResolveSession: usecase.NewResolveSessionUseCase(sessions),
		UpdateProfile:  usecase.NewUpdateProfileUseCase(apiClient, sessions),

		SearchProperties:  usecase.NewSearchPropertiesUseCase(apiClient),
		PropertyDetails:   usecase.NewGetPropertyDetailsUseCase(apiClient),
		ListMyProperties:  usecase.NewListMyPropertiesUseCase(apiClient),
		CreateProperty:    usecase.NewCreatePropertyUseCase(apiClient, payloadValidator),
		UpdateProperty:    usecase.NewUpdatePropertyUseCase(apiClient, payloadValidator),
		DeleteProperty:    usecase.NewDeletePropertyUseCase(apiClient),
		CreateFSBOListing: usecase.NewCreateFSBOListingUseCase(apiClient, apiClient, payloadValidator),

		SubmitLead:       usecase.NewSubmitLeadUseCase(apiClient, leadEvents),
		ListLeads:        usecase.NewListLeadsUseCase(apiClient, board),
		UpdateLeadStatus: usecase.NewUpdateLeadStatusUseCase(apiClient, board, journal, leadEvents, sseNotifier),
		PayForLead:       usecase.NewPayForLeadUseCase(apiClient, apiClient, board),
		ConfirmPayment:   usecase.NewConfirmPaymentUseCase(apiClient, sessions, board, sseNotifier),
		LeadHistory:      usecase.NewGetLeadHistoryUseCase(apiClient, board, journal),

		Dashboard:       usecase.NewGetDashboardUseCase(sessions),
		ListTiers:       usecase.NewListTiersUseCase(apiClient),
		SubscribeToTier: usecase.NewSubscribeToTierUseCase(apiClient, sessions),

		ListPartners:   usecase.NewListPartnersUseCase(apiClient),
		ReferToPartner: usecase.NewReferToPartnerUseCase(apiClient),
	}
	appLogger.Info("All use cases initialized.", nil)

	// --- 5. REST API ---
	cookies := rest.CookieSettings{Secure: appConfig.Session.CookieSecure}
	handlers := rest.NewHandlers(useCases, sseNotifier, cookies, appConfig.Rest.PublicBaseURL)
	router := rest.NewRouter(handlers, useCases.ResolveSession, appConfig.Rest.AllowedOrigins, cookies, baseLogger)
	application.apiServer = rest.NewServer(appConfig.Rest.PORT, router, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return application, nil
}

func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// SSE-запросы не завершаются сами, Shutdown ждал бы их до таймаута
		if a.notifier != nil {
			a.notifier.Close()
		}
		if a.apiServer != nil {
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		a.closeResources()
		a.logger.Info("Application shut down gracefully.", nil)
		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 2)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("HTTP server start error: %w", err)
		}
	}()

	if a.eventsListener != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listenerLogger := a.logger.WithFields(port.Fields{"listener": "Lead Events Listener"})
			listenerLogger.Info("Starting listener...", nil)

			if err := a.eventsListener.Start(appCtx); err != nil {
				listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
				errorsCh <- fmt.Errorf("lead events listener error: %w", err)
			} else {
				listenerLogger.Info("Listener stopped gracefully.", nil)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or component error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	// отмена контекста останавливает слушателя до закрытия соединений
	cancelApp()

	return nil
}

// closeResources освобождает инфраструктуру в обратном порядке создания.
func (a *App) closeResources() {
	if a.eventsListener != nil {
		if err := a.eventsListener.Close(); err != nil {
			a.logger.Error("Error closing lead events listener", err, nil)
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ publisher", err, nil)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.notifier != nil {
		a.notifier.Close()
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("Error closing Redis client", err, nil)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
