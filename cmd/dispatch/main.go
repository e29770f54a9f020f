package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	nrecho "github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"

	"github.com/ridewave/dispatch/internal/pkg/config"
	"github.com/ridewave/dispatch/internal/pkg/database"
	"github.com/ridewave/dispatch/internal/pkg/health"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/middleware"
	natspkg "github.com/ridewave/dispatch/internal/pkg/nats"
	nrpkg "github.com/ridewave/dispatch/internal/pkg/newrelic"
	wspkg "github.com/ridewave/dispatch/internal/pkg/websocket"
	"github.com/ridewave/dispatch/services/dispatch/gateway"
	"github.com/ridewave/dispatch/services/dispatch/handler"
	httpHandler "github.com/ridewave/dispatch/services/dispatch/handler/http"
	natsHandler "github.com/ridewave/dispatch/services/dispatch/handler/nats"
	wsHandler "github.com/ridewave/dispatch/services/dispatch/handler/websocket"
	"github.com/ridewave/dispatch/services/dispatch/repository"
	"github.com/ridewave/dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLogger(configs, nrApp)
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

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Session registry shared by the usecase and the transport handlers
	manager := wspkg.NewManager(configs.JWT)

	dispatchRepo := repository.NewDispatchRepo(configs, postgresClient.GetDB(), redisClient)
	dispatchGW := gateway.NewDispatchGW(configs, natsClient)
	dispatchUC := usecase.NewDispatchUC(configs, dispatchRepo, dispatchGW, manager)

	pricingHandler := httpHandler.NewPricingHandler(dispatchUC)
	wsManager := wsHandler.NewWebSocketManager(dispatchUC, manager, configs.JWT)
	busHandler := natsHandler.NewNatsHandler(dispatchUC, natsClient)
	defer busHandler.Close()

	h := handler.NewHandler(pricingHandler, wsManager, busHandler, configs)

	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}

	health.RegisterHealthEndpoints(e, appName)

	if err := h.RegisterRoutes(e); err != nil {
		zapLogger.Fatal("Failed to register routes", zap.Error(err))
	}

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
