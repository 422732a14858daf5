// File: fitgarden/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitgarden/backend"
	"fitgarden/config"
	"fitgarden/handlers"
	"fitgarden/middleware"
	"fitgarden/routes"
	"fitgarden/services/agenda"
	"fitgarden/services/booking"
	"fitgarden/services/catalog"
	"fitgarden/services/notification"
	"fitgarden/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitDraftCache()
	utils.InitRefCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Core backend client. The token provider is injected so no handler
	// touches ambient session state; authenticated requests forward the
	// caller's own token, everything else uses the service account.
	backendClient := backend.NewClient(
		config.AppConfig.BackendBaseURL,
		time.Duration(config.AppConfig.BackendTimeoutSeconds)*time.Second,
		backend.StaffTokenProvider{Fallback: config.AppConfig.BackendToken},
		logger,
	)

	// services.
	catalogService := &catalog.DefaultService{
		Backend: backendClient,
		Cache:   utils.GetRefCacheClient(),
		TTL:     time.Duration(config.AppConfig.RefCacheTTLMinutes) * time.Minute,
	}

	draftService := &booking.DefaultDraftService{
		Store: &booking.RedisDraftStore{
			Client: utils.GetDraftCacheClient(),
			TTL:    time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute,
		},
		Backend: backendClient,
		Catalog: catalogService,
		Policy: booking.EditPolicy{
			AllowPaymentChange: config.AppConfig.EditAllowPaymentChange,
			AllowClienteChange: config.AppConfig.EditAllowClienteChange,
		},
		Logger: logger,
	}

	agendaService := &agenda.DefaultService{
		Backend: backendClient,
		Logger:  logger,
	}

	notifier := &notification.WhatsAppService{
		CountryCode: config.AppConfig.WhatsAppCountryCode,
	}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(draftService, notifier, logger)
	agendaHandler := handlers.NewAgendaHandler(agendaService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)

	handlerBundle := handlers.NewHandlerBundle(bookingHandler, agendaHandler, catalogHandler)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
