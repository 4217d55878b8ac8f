package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"saas-signup-backend/internal/api/routes"
	"saas-signup-backend/internal/config"
	"saas-signup-backend/internal/database"
	"saas-signup-backend/internal/logger"
	"saas-signup-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "saas-signup-backend/docs" // This is needed for swag
)

//	@title			SaaS Signup Backend API
//	@version		1.0
//	@description	Company-scoped user registration with an admin approval queue.

//	@host		localhost:3000
//	@BasePath	/

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logrus.SetOutput(os.Stdout)
	logger.Setup(cfg.LogLevel)

	shutdownTelemetry := telemetry.Setup(cfg.OTelServiceName, cfg.OTelEndpoint, cfg.OTelInsecure)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			logrus.WithError(err).Warn("Failed to flush traces")
		}
	}()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "3000"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      otelhttp.NewHandler(router, cfg.OTelServiceName),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}
