// File: glamvan/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glamvan/config"
	"glamvan/database"
	bookingRepo "glamvan/database/repository/booking"
	catalogRepo "glamvan/database/repository/catalog"
	promotionRepo "glamvan/database/repository/promotion"
	stylistRepo "glamvan/database/repository/stylist"
	vanRepo "glamvan/database/repository/van"
	"glamvan/handlers"
	"glamvan/routes"
	"glamvan/services/booking"
	"glamvan/services/storage"
	"glamvan/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := storage.NewCloudinaryStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()
	styRepo := stylistRepo.NewMongoStylistRepo()
	vnRepo := vanRepo.NewMongoVanRepo()
	promoRepo := promotionRepo.NewMongoPromotionRepo()

	// services.
	sessionService := &booking.DefaultSessionService{
		Catalog:  catRepo,
		Vans:     vnRepo,
		Stylists: styRepo,
		Bookings: bkRepo,
		Store:    booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Logger:   logger,
	}
	experienceService := &booking.DefaultExperienceService{
		Bookings: bkRepo,
		Logger:   logger,
	}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(sessionService, experienceService, storageService, logger)
	catalogHandler := handlers.NewCatalogHandler(catRepo, styRepo, logger)
	adminHandler := handlers.NewAdminHandler(bkRepo, logger)
	resourceHandler := handlers.NewResourceHandler(styRepo, vnRepo, promoRepo, logger)

	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListServices:           catalogHandler.ListServices,
		ListServicesByCategory: catalogHandler.ListServicesByCategory,
		ListStylists:           catalogHandler.ListStylists,

		// Booking wizard endpoints.
		StartSession:   bookingHandler.StartSession,
		GetSession:     bookingHandler.GetSession,
		UpdateSession:  bookingHandler.UpdateSession,
		AdvanceSession: bookingHandler.AdvanceSession,
		RetreatSession: bookingHandler.RetreatSession,
		CancelSession:  bookingHandler.CancelSession,
		UploadReceipt:  bookingHandler.UploadReceipt,

		// Post-completion endpoints.
		RateExperience: bookingHandler.RateExperience,
		GetLoyalty:     bookingHandler.GetLoyalty,

		// Admin endpoints.
		AdminLogin:      adminHandler.LoginHandler,
		AdminHandler:    adminHandler,
		ResourceHandler: resourceHandler,
	}

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
