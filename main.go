package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DigitariaWebs/cheminement-sub002/config"
	"github.com/DigitariaWebs/cheminement-sub002/cron"
	"github.com/DigitariaWebs/cheminement-sub002/database"
	appointmentRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/appointment"
	professionalRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/professional"
	"github.com/DigitariaWebs/cheminement-sub002/handlers"
	"github.com/DigitariaWebs/cheminement-sub002/middleware"
	"github.com/DigitariaWebs/cheminement-sub002/routes"
	"github.com/DigitariaWebs/cheminement-sub002/services/notification"
	"github.com/DigitariaWebs/cheminement-sub002/services/scheduling"
	"github.com/DigitariaWebs/cheminement-sub002/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// repositories.
	profRepo := professionalRepo.NewMongoProfessionalRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	if err := profRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure professional indexes: %v", err)
	}
	// The partial unique slot index backs the no-double-booking guarantee;
	// refuse to serve without it.
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// services.
	notificationService := &notification.DefaultNotificationService{
		GatewayURL: config.AppConfig.NotificationGatewayURL,
	}
	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()

	schedulingService := &scheduling.DefaultSchedulingService{
		Professionals: profRepo,
		Appointments:  apptRepo,
		Cache:         utils.GetCacheClient(),
		CacheTTL:      time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
		Reminders:     reminderClient,
	}

	cron.InitReminderWorker(notificationService, apptRepo)

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService, notificationService, logger)
	handlerBundle := handlers.NewHandlerBundle(schedulingHandler)

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
