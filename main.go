package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"koobings/config"
	"koobings/cron"
	"koobings/database"
	"koobings/database/migrations"
	appointmentRepo "koobings/database/repository/appointment"
	businessRepoPkg "koobings/database/repository/business"
	clientRepoPkg "koobings/database/repository/client"
	serviceRepoPkg "koobings/database/repository/service"
	staffRepoPkg "koobings/database/repository/staff"
	"koobings/handlers"
	"koobings/middleware"
	"koobings/routes"
	"koobings/services/booking"
	"koobings/services/business"
	"koobings/services/catalog"
	"koobings/services/client"
	"koobings/services/notification"
	"koobings/services/scheduling"
	"koobings/services/staff"
	"koobings/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitAuthCache()

	if err := migrations.RunPending(context.Background(), database.DB()); err != nil {
		logger.Sugar().Fatalf("main: failed to run migrations: %v", err)
	}
	if err := appointmentRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bizRepo := businessRepoPkg.NewMongoBusinessRepo()
	stRepo := staffRepoPkg.NewMongoStaffRepo()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	clRepo := clientRepoPkg.NewMongoClientRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// background queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// services.
	businessService := &business.DefaultBusinessService{Repo: bizRepo}
	staffService := &staff.DefaultStaffService{Repo: stRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: svcRepo, StaffRepo: stRepo}
	clientService := &client.DefaultClientService{Repo: clRepo, BusinessRepo: bizRepo}
	notificationService := notification.NewEmailNotificationService()

	engine := &scheduling.DefaultAvailabilityEngine{
		BusinessRepo: bizRepo,
		StaffRepo:    stRepo,
		ServiceRepo:  svcRepo,
		ApptRepo:     apptRepo,
	}

	bookingService := &booking.DefaultBookingService{
		BusinessRepo: bizRepo,
		StaffRepo:    stRepo,
		ServiceRepo:  svcRepo,
		ApptRepo:     apptRepo,
		Engine:       engine,
		ClientSvc:    clientService,
		NotifSvc:     notificationService,
		AsynqClient:  asynqClient,
	}

	// handlers.
	businessHandler := handlers.NewBusinessHandler(businessService)
	staffHandler := handlers.NewStaffHandler(staffService, businessService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, businessService)
	clientHandler := handlers.NewClientHandler(clientService, bookingService)
	availabilityHandler := handlers.NewAvailabilityHandler(engine, businessService)
	bookingHandler := handlers.NewBookingHandler(bookingService, businessService)

	handlerBundle := &handlers.HandlerBundle{
		RegisterBusinessHandler:       businessHandler.Register,
		AuthenticateBusinessHandler:   businessHandler.Login,
		GetBusinessHandler:            businessHandler.Get,
		UpdateBusinessSettingsHandler: businessHandler.UpdateSettings,

		LogoutHandler: handlers.Logout,

		CreateStaffHandler:          staffHandler.Create,
		AuthenticateStaffHandler:    staffHandler.Login,
		GetStaffHandler:             staffHandler.Get,
		ListStaffHandler:            staffHandler.List,
		UpdateStaffHandler:          staffHandler.Update,
		DeleteStaffHandler:          staffHandler.Delete,
		SetStaffScheduleHandler:     staffHandler.SetSchedule,
		GetStaffScheduleHandler:     staffHandler.GetSchedule,
		AddUnavailabilityHandler:    staffHandler.AddUnavailability,
		ListUnavailabilityHandler:   staffHandler.ListUnavailability,
		RemoveUnavailabilityHandler: staffHandler.RemoveUnavailability,
		PublicListStaffHandler:      staffHandler.PublicList,

		CreateServiceHandler:      catalogHandler.Create,
		GetServiceHandler:         catalogHandler.Get,
		ListServicesHandler:       catalogHandler.List,
		UpdateServiceHandler:      catalogHandler.Update,
		DeleteServiceHandler:      catalogHandler.Delete,
		PublicListServicesHandler: catalogHandler.PublicList,

		CreateClientHandler:       clientHandler.Create,
		GetClientHandler:          clientHandler.Get,
		ListClientsHandler:        clientHandler.List,
		UpdateClientHandler:       clientHandler.Update,
		DeleteClientHandler:       clientHandler.Delete,
		ClientAppointmentsHandler: clientHandler.Appointments,

		GetDaySlotsHandler:        availabilityHandler.GetDaySlots,
		GetWeekSlotsHandler:       availabilityHandler.GetWeekSlots,
		PublicAvailabilityHandler: availabilityHandler.PublicAvailability,

		InitiateSessionHandler:  bookingHandler.InitiateSession,
		UpdateSessionHandler:    bookingHandler.UpdateSession,
		ConfirmSessionHandler:   bookingHandler.ConfirmSession,
		CancelSessionHandler:    bookingHandler.CancelSession,
		BookHandler:             bookingHandler.Book,
		GetAppointmentHandler:   bookingHandler.Get,
		ListAppointmentsHandler: bookingHandler.List,
		AcceptHandler:           bookingHandler.Accept,
		RejectHandler:           bookingHandler.Reject,
		CancelHandler:           bookingHandler.Cancel,
		CompleteHandler:         bookingHandler.Complete,
		NoShowHandler:           bookingHandler.MarkNoShow,

		HealthHandler: handlers.NewHealthHandler(utils.GetHealthStatus),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitoring.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetAuthCacheClient(),
	}, database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Server listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
	}
	logger.Info("Server exited")
}
