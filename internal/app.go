package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"findhome-bot/internal/adapters/discordbot"
	logger_adapter "findhome-bot/internal/adapters/logger"
	rabbitmq_adapter "findhome-bot/internal/adapters/rabbitmq"
	"findhome-bot/internal/adapters/realtorfetcher"
	"findhome-bot/internal/adapters/rest"
	"findhome-bot/internal/adapters/sessionstore"
	"findhome-bot/internal/configs"
	"findhome-bot/internal/constants"
	"findhome-bot/internal/contracts"
	"findhome-bot/internal/core/port"
	"findhome-bot/internal/core/usecase"
	fluentlogger "findhome-bot/pkg/fluent_logger"
	"findhome-bot/pkg/rabbitmq/rabbitmq_common"
	"findhome-bot/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	gateway      port.EventListenerPort
	apiServer    *rest.Server
	sessionStore *sessionstore.MemorySessionStore

	// nil, если RABBITMQ_URL не задан
	connManager    *rabbitmq_common.ConnectionManager
	eventsProducer *rabbitmq_producer.Publisher
}

// NewApp - composition root: здесь создаются и связываются все зависимости
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
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
			Async:     true,
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

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// закрывает то, что уже успели создать, если сборка сорвалась
	application := &App{config: appConfig, fluentClient: fluentClient, logger: appLogger}
	fail := func(msg string, err error) (*App, error) {
		appLogger.Error(msg, err, nil)
		application.release()
		return nil, fmt.Errorf("%s: %w", msg, err)
	}

	// --- 2. КАТАЛОГ ФИЛЬТРОВ И ИСХОДЯЩИЕ АДАПТЕРЫ ---
	catalog, err := configs.LoadFilterCatalog(appConfig.FiltersFile)
	if err != nil {
		return fail("Failed to load filter catalog", err)
	}
	appLogger.Info("Filter catalog loaded", port.Fields{
		"cities": len(catalog.Cities), "price_tiers": len(catalog.PriceTiers), "custom_file": appConfig.FiltersFile != "",
	})

	fetcher, err := realtorfetcher.NewRealtorFetcherAdapter(realtorfetcher.Config{
		SearchURL:   appConfig.Provider.SearchURL,
		Timeout:     appConfig.Provider.Timeout,
		RandomDelay: appConfig.Provider.RandomDelay,
	})
	if err != nil {
		return fail("Failed to create realtor fetcher", err)
	}

	application.sessionStore = sessionstore.NewMemorySessionStore(appConfig.Session.Timeout, baseLogger)

	var searchEvents port.SearchEventsPort
	if appConfig.RabbitMQ.URL != "" {
		searchEvents, err = application.initSearchEvents(baseLogger)
		if err != nil {
			return fail("Failed to initialize search events publisher", err)
		}
	} else {
		appLogger.Warn("RABBITMQ_URL is empty, search events are disabled", nil)
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 3. USE CASES ---
	presenter := usecase.NewResultPresenter()
	startSessionUC := usecase.NewStartSessionUseCase(application.sessionStore, catalog)
	selectFilterUC := usecase.NewSelectFilterUseCase(application.sessionStore, catalog)
	confirmSearchUC := usecase.NewConfirmSearchUseCase(application.sessionStore, fetcher, presenter, searchEvents)
	previewListingsUC := usecase.NewPreviewListingsUseCase(catalog, fetcher)
	appLogger.Info("All use cases initialized.", nil)

	// --- 4. ВХОДЯЩИЕ АДАПТЕРЫ ---
	gateway, err := discordbot.NewDiscordGatewayAdapter(discordbot.GatewayConfig{
		Token:         appConfig.Discord.Token,
		GuildID:       appConfig.Discord.GuildID,
		CommandPrefix: appConfig.Discord.CommandPrefix,
		CommandName:   appConfig.Discord.CommandName,
	}, startSessionUC, selectFilterUC, confirmSearchUC, baseLogger)
	if err != nil {
		return fail("Failed to create Discord gateway", err)
	}
	application.gateway = gateway

	if appConfig.HTTP.Enabled {
		handler := rest.NewListingsHandler(previewListingsUC, catalog, application.sessionStore, presenter)
		application.apiServer = rest.NewServer(appConfig.HTTP.Port, handler, appConfig.HTTP.AllowedOrigins, baseLogger)
		appLogger.Info("REST API server configured.", nil)
	}

	return application, nil
}

// initSearchEvents поднимает соединение с RabbitMQ и издателя событий поиска
func (a *App) initSearchEvents(baseLogger port.LoggerPort) (port.SearchEventsPort, error) {
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewManager(a.config.RabbitMQ.URL, connManagerBridge)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		ExchangeName:             a.config.RabbitMQ.Exchange,
		ExchangeType:             constants.EventsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.eventsProducer = producer

	registry, err := contracts.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load event schemas: %w", err)
	}

	adapter, err := rabbitmq_adapter.NewSearchEventsAdapter(producer, registry, constants.RoutingKeySearchPerformed)
	if err != nil {
		return nil, err
	}
	a.logger.Info("RabbitMQ Event Producer initialized.", port.Fields{"exchange": a.config.RabbitMQ.Exchange})
	return adapter, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		a.release()
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		listenerLogger := a.logger.WithFields(port.Fields{"listener_name": "Discord Gateway"})
		listenerLogger.Info("Starting listener...", nil)

		if err := a.gateway.Start(appCtx); err != nil {
			listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
			errorsCh <- fmt.Errorf("discord gateway error: %w", err)
		} else {
			listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
		}
	}()

	if a.apiServer != nil {
		go func() {
			a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.HTTP.Port})
			if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or component error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", runErr, nil)
	}

	cancelApp()
	return runErr
}

// release закрывает ресурсы в обратном порядке; повторный вызов безопасен
func (a *App) release() {
	if a.apiServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := a.apiServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}
		cancel()
		a.apiServer = nil
	}

	if a.gateway != nil {
		if err := a.gateway.Close(); err != nil {
			a.logger.Error("Error closing Discord gateway", err, nil)
		}
		a.gateway = nil
	}

	if a.sessionStore != nil {
		_ = a.sessionStore.Close()
		a.sessionStore = nil
	}

	if a.eventsProducer != nil {
		if err := a.eventsProducer.Close(); err != nil {
			a.logger.Error("Error closing event producer", err, nil)
		}
		a.eventsProducer = nil
	}

	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
		a.connManager = nil
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен, пишем в stdout
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
		a.fluentClient = nil
	}
}

func parseLogLevel(levelStr string) slog.Level {
	level, ok := logger_adapter.ParseLevel(levelStr)
	if !ok {
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
	}
	return level
}
