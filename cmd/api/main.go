package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"repairhub/internal/adapter/events"
	"repairhub/internal/adapter/http/handlers"
	"repairhub/internal/adapter/http/middleware"
	"repairhub/internal/adapter/http/routes"
	"repairhub/internal/adapter/persistence/memory"
	"repairhub/internal/adapter/persistence/repository"
	"repairhub/internal/infrastructure/config"
	"repairhub/internal/infrastructure/database"
	"repairhub/internal/infrastructure/logger"
	"repairhub/internal/infrastructure/payments"
	"repairhub/internal/usecase"
	"repairhub/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// @title           RepairHub API
// @version         1.0
// @description     Service-request lifecycle and wallet ledger for the repair marketplace.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

type storage struct {
	requests interfaces.IServiceRequestRepository
	wallets  interfaces.IWalletRepository
	stats    interfaces.ITechnicianStatsRepository
	uow      interfaces.IUnitOfWork
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("[main] storage unavailable")
	}

	publisher := events.NewFanoutPublisher(events.NewLogPublisher(log))

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn().Err(err).Msg("[main] Mercado Pago gateway not configured, wallet top-ups disabled")
	} else {
		gateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(store.requests, store.wallets, store.uow, publisher, log)
	lifecycleUseCase := usecase.NewLifecycleUseCase(store.requests, store.stats, store.uow, paymentUseCase, publisher, log)
	walletUseCase := usecase.NewWalletUseCase(store.wallets, store.uow, gateway, log)

	router := routes.NewRouter(routes.Handlers{
		ServiceRequests: handlers.NewServiceRequestHandler(lifecycleUseCase),
		Wallets:         handlers.NewWalletHandler(walletUseCase),
	}, routes.Options{
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Logger:         log,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.CORS(cfg.CORSAllowedOrigins)(router),
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("[main] server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("[main] failed to start the application")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("[main] shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("[main] graceful shutdown failed")
	}
	log.Info().Msg("[main] server stopped")
}

func openStorage(ctx context.Context, cfg config.Config, log zerolog.Logger) (storage, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warn().Msg("[main] using in-memory storage, data is lost on restart")
		s := memory.NewStore()
		return storage{requests: s.ServiceRequests(), wallets: s.Wallets(), stats: s.TechnicianStats(), uow: s}, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.Options{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
		if err != nil {
			return storage{}, err
		}
		tables := repository.Tables(cfg.Tables)
		return storage{
			requests: repository.NewServiceRequestDynamoRepository(ddb, tables),
			wallets:  repository.NewWalletDynamoRepository(ddb, tables),
			stats:    repository.NewTechnicianStatsDynamoRepository(ddb, tables),
			uow:      repository.NewDynamoUnitOfWork(ddb, tables),
		}, nil
	}
	return storage{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
}
