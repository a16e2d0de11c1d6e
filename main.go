// File: hudumahub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hudumahub/config"
	"hudumahub/cron"
	"hudumahub/database"
	bookingRepoPkg "hudumahub/database/repository/booking"
	notificationRepoPkg "hudumahub/database/repository/notification"
	providerRepoPkg "hudumahub/database/repository/provider"
	userRepoPkg "hudumahub/database/repository/user"
	"hudumahub/handlers"
	"hudumahub/middleware"
	"hudumahub/routes"
	"hudumahub/services/booking"
	ai "hudumahub/services/intelligence"
	"hudumahub/services/matching"
	"hudumahub/services/notification"
	"hudumahub/services/provider"
	"hudumahub/services/user"
	"hudumahub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitAICache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// background task queue client.
	taskQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	defer taskQueue.Close()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	providerService := &provider.DefaultProviderService{
		Repo: provRepo,
	}
	matchingService := &matching.DefaultMatchingService{
		ProviderRepo: provRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo:      notifRepo,
		Users:     userRepo,
		Providers: provRepo,
	}

	decisionStore := ai.NewRedisDecisionStore(utils.GetAICacheClient(), 24*time.Hour)
	var oracle ai.DecisionOracle
	if config.AppConfig.GeminiAPIKey != "" {
		oracle = ai.NewGeminiOracle(config.AppConfig.GeminiAPIKey, decisionStore)
	}

	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		UserRepo:     userRepo,
		ProviderRepo: provRepo,
		Notifier:     notificationService,
		Payments:     booking.NewStripePaymentHandler(logger),
		Oracle:       oracle,
		TaskQueue:    taskQueue,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		ProviderRepo: provRepo,

		User: &handlers.UserHandler{UserService: userService},
		Provider: &handlers.ProviderHandler{
			ProviderService: providerService,
			MatchingService: matchingService,
		},
		Booking:      &handlers.BookingHandler{BookingSvc: bookingService, Logger: logger},
		Notification: &handlers.NotificationHandler{Svc: notificationService},
		AI:           &handlers.AIHandler{BookingSvc: bookingService, Logger: logger},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for AI auto-decisions and invoice reminders.
	cron.InitWorker(bookingService, bookingRepo, notificationService)

	// Periodic health checks surfaced on /health.
	utils.StartHealthMonitor(database.MongoClient)

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
