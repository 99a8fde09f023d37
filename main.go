package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediflow/config"
	"mediflow/cron"
	"mediflow/database"
	accountRepoPkg "mediflow/database/repository/account"
	appointmentRepoPkg "mediflow/database/repository/appointment"
	prescriptionRepoPkg "mediflow/database/repository/prescription"
	scheduleRepoPkg "mediflow/database/repository/schedule"
	"mediflow/handlers"
	"mediflow/middleware"
	"mediflow/routes"
	"mediflow/services/account"
	"mediflow/services/appointment"
	"mediflow/services/notification"
	"mediflow/services/prescription"
	"mediflow/services/schedule"
	"mediflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, attachments disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	prescriptionRepo := prescriptionRepoPkg.NewMongoPrescriptionRepo()

	// services.
	accountService := &account.DefaultAccountService{
		Repo: accountRepo,
	}

	scheduleService := &schedule.DefaultScheduleService{
		Repo:         scheduleRepo,
		Accounts:     accountRepo,
		Appointments: appointmentRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Accounts: accountRepo,
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:        appointmentRepo,
		Accounts:    accountRepo,
		ScheduleSvc: scheduleService,
		Notifier:    notificationService,
		Reminders:   reminderClient,
	}

	prescriptionService := &prescription.DefaultPrescriptionService{
		Repo:         prescriptionRepo,
		Appointments: appointmentRepo,
		Storage:      cloudinaryStorageService,
	}

	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		accountRepo,
		accountService,
		scheduleService,
		appointmentService,
		prescriptionService,
	)
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
