package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/config"
	"github.com/piyathilaka/routemate/internal/pkg/database"
	"github.com/piyathilaka/routemate/internal/pkg/health"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/middleware"
	"github.com/piyathilaka/routemate/internal/pkg/server"
	"github.com/piyathilaka/routemate/services/boarding/gateway/telephony"
	"github.com/piyathilaka/routemate/services/boarding/handler"
	httpHandler "github.com/piyathilaka/routemate/services/boarding/handler/http"
	"github.com/piyathilaka/routemate/services/boarding/repository"
	"github.com/piyathilaka/routemate/services/boarding/usecase"
)

func main() {
	appName := "boarding-service"
	configPath := "config/boarding.env"
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

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(postgresClient.GetDB())
	crewRepo := repository.NewCrewRepository(postgresClient.GetDB())
	profileRepo := repository.NewProfileRepository(postgresClient.GetDB())
	callLogRepo := repository.NewCallLogRepository(postgresClient.GetDB())

	// Initialize telephony gateway
	telephonyGW := telephony.NewClient(&configs.Telephony)

	// Initialize usecases
	ticketUC := usecase.NewTicketUC(bookingRepo, crewRepo)
	pickupUC := usecase.NewPickupUC(bookingRepo, profileRepo)
	callUC := usecase.NewCallUC(bookingRepo, crewRepo, profileRepo, callLogRepo, telephonyGW, configs)

	// Initialize handlers
	ticketHandler := httpHandler.NewTicketHandler(ticketUC)
	pickupHandler := httpHandler.NewPickupHandler(pickupUC)
	callHandler := httpHandler.NewCallHandler(callUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName)

	h := handler.NewHandler(ticketHandler, pickupHandler, callHandler, configs)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.Error("Server stopped with error", logger.Err(err))
	}

	appLogger.Info("Server exiting gracefully")
}
