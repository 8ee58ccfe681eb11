package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pioneer-funding/server/internal/ledger"
	"github.com/pioneer-funding/server/internal/pkg/catalog"
	"github.com/pioneer-funding/server/internal/pkg/config"
	"github.com/pioneer-funding/server/internal/pkg/database"
	"github.com/pioneer-funding/server/internal/pkg/health"
	"github.com/pioneer-funding/server/internal/pkg/logger"
	"github.com/pioneer-funding/server/internal/pkg/metrics"
	"github.com/pioneer-funding/server/internal/pkg/middleware"
	"github.com/pioneer-funding/server/internal/pkg/models"
	natspkg "github.com/pioneer-funding/server/internal/pkg/nats"
	nrpkg "github.com/pioneer-funding/server/internal/pkg/newrelic"
	nsqpkg "github.com/pioneer-funding/server/internal/pkg/nsq"
	"github.com/pioneer-funding/server/internal/pkg/server"
	authHandler "github.com/pioneer-funding/server/services/auth/handler"
	authHTTP "github.com/pioneer-funding/server/services/auth/handler/http"
	authRepository "github.com/pioneer-funding/server/services/auth/repository"
	authUsecase "github.com/pioneer-funding/server/services/auth/usecase"
	challengeHandler "github.com/pioneer-funding/server/services/challenges/handler"
	challengeHTTP "github.com/pioneer-funding/server/services/challenges/handler/http"
	challengeUsecase "github.com/pioneer-funding/server/services/challenges/usecase"
	lifecycleGateway "github.com/pioneer-funding/server/services/lifecycle/gateway"
	lifecycleHandler "github.com/pioneer-funding/server/services/lifecycle/handler"
	lifecycleHTTP "github.com/pioneer-funding/server/services/lifecycle/handler/http"
	lifecycleRepository "github.com/pioneer-funding/server/services/lifecycle/repository"
	lifecycleUsecase "github.com/pioneer-funding/server/services/lifecycle/usecase"
	paymentHandler "github.com/pioneer-funding/server/services/payments/handler"
	paymentHTTP "github.com/pioneer-funding/server/services/payments/handler/http"
	paymentUsecase "github.com/pioneer-funding/server/services/payments/usecase"
	userHandler "github.com/pioneer-funding/server/services/users/handler"
	userHTTP "github.com/pioneer-funding/server/services/users/handler/http"
	userUsecase "github.com/pioneer-funding/server/services/users/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "pioneer-funding-api"
	configPath := config.GetEnv("CONFIG_PATH", "config/api.env")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET must be set")
	}

	products, err := catalog.Load(configs.Catalog.FilePath)
	if err != nil {
		zapLogger.Fatal("Failed to load challenge catalog", zap.Error(err))
	}

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	healthSvc := health.NewService()
	healthSvc.AddChecker("postgres", postgresClient)
	healthSvc.AddChecker("redis", redisClient)

	broker := initBroker(configs, zapLogger, shutdown, healthSvc)

	// Repositories
	store := ledger.NewStore(postgresClient.GetDB())
	authRepo := authRepository.NewAuthRepository(postgresClient.GetDB())
	dedup := lifecycleRepository.NewEventDedup(redisClient, time.Duration(configs.Stripe.DedupTTL)*time.Hour)

	// Gateways
	paymentGW := lifecycleGateway.NewStripeGW(configs.Stripe)
	eventGW := lifecycleGateway.NewEventGW(broker, configs.Events.Subject)

	// Use cases
	authUC := authUsecase.NewAuthUC(configs, authRepo, store)
	lifecycleUC := lifecycleUsecase.NewLifecycleUC(configs, products, store, dedup, paymentGW, eventGW)
	challengeUC := challengeUsecase.NewChallengeUC(products, store, authUC)
	paymentUC := paymentUsecase.NewPaymentUC(store)
	userUC := userUsecase.NewUserUC(store, authRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestContextMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	metrics.Register()
	e.GET("/metrics", metrics.Handler())
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthSvc)

	bearer := middleware.BearerAuth(authUC)
	admin := middleware.RequireAdmin(authUC)

	var public []echo.MiddlewareFunc
	if configs.RateLimit.Enabled {
		public = append(public, middleware.IPRateLimiter(configs.RateLimit.Limit,
			time.Duration(configs.RateLimit.Period)*time.Second, redisClient.GetClient()))
	}

	api := e.Group("/api")
	authHandler.NewHandler(authHTTP.NewAuthHandler(authUC)).RegisterRoutes(api, bearer, public...)
	challengeHandler.NewHandler(challengeHTTP.NewChallengeHandler(challengeUC)).RegisterRoutes(api, bearer)
	lifecycleHandler.NewHandler(lifecycleHTTP.NewLifecycleHandler(lifecycleUC)).RegisterRoutes(api, bearer, admin)
	paymentHandler.NewHandler(paymentHTTP.NewPaymentHandler(paymentUC)).RegisterRoutes(api, bearer)
	userHandler.NewHandler(userHTTP.NewUserHandler(userUC)).RegisterRoutes(api, bearer, admin)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.String("app", appName), zap.Error(err))
	}
}

// initBroker connects the configured lifecycle event broker. A nil broker
// disables publishing.
func initBroker(configs *models.Config, zapLogger *logger.ZapLogger, shutdown *server.ShutdownManager, healthSvc *health.Service) lifecycleGateway.Broker {
	switch configs.Events.Driver {
	case "nats":
		producer, err := natspkg.NewProducer(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		shutdown.Register("nats", func(context.Context) error { producer.Stop(); return nil })
		healthSvc.AddChecker("nats", producer)
		return producer
	case "nsq":
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		shutdown.Register("nsq", func(context.Context) error { producer.Stop(); return nil })
		healthSvc.AddChecker("nsq", producer)
		return producer
	default:
		zapLogger.Warn("Lifecycle event publishing disabled", zap.String("driver", configs.Events.Driver))
		return nil
	}
}
