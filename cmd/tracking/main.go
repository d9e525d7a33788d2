package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/config"
	"github.com/piyathilaka/routemate/internal/pkg/database"
	"github.com/piyathilaka/routemate/internal/pkg/health"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/middleware"
	"github.com/piyathilaka/routemate/internal/pkg/nats"
	"github.com/piyathilaka/routemate/internal/pkg/server"
	pkgws "github.com/piyathilaka/routemate/internal/pkg/websocket"
	natsGateway "github.com/piyathilaka/routemate/services/tracking/gateway/nats"
	"github.com/piyathilaka/routemate/services/tracking/handler"
	httpHandler "github.com/piyathilaka/routemate/services/tracking/handler/http"
	natsHandler "github.com/piyathilaka/routemate/services/tracking/handler/nats"
	wsHandler "github.com/piyathilaka/routemate/services/tracking/handler/websocket"
	"github.com/piyathilaka/routemate/services/tracking/repository"
	"github.com/piyathilaka/routemate/services/tracking/usecase"
)

func main() {
	appName := "tracking-service"
	configPath := "config/tracking.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		appLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	locationRepo := repository.NewLocationRepository(postgresClient.GetDB(), redisClient, configs)
	busRepo := repository.NewBusRepository(postgresClient.GetDB())

	// Initialize gateway
	trackingGW := natsGateway.NewGateway(natsClient)

	// Initialize WebSocket connection registry
	wsManager := pkgws.NewManager(configs.JWT)

	// Initialize usecases
	locationUC := usecase.NewLocationUC(locationRepo, busRepo, trackingGW, configs)
	routerUC := usecase.NewRouterUC(wsManager)

	// Initialize handlers
	busHandler := httpHandler.NewBusHandler(locationUC)
	wsHdlr := wsHandler.NewWebSocketManager(locationUC, routerUC, wsManager)
	natsHdlr := natsHandler.NewNatsHandler(routerUC, natsClient)

	if err := natsHdlr.InitConsumers(); err != nil {
		appLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName)

	h := handler.NewHandler(busHandler, wsHdlr, natsHdlr, configs)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.Error("Server stopped with error", logger.Err(err))
	}

	appLogger.Info("Server exiting gracefully")
}
