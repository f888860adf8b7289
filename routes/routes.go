package routes

import (
	"net/http"
	"time"

	"glamvan/handlers"
	"glamvan/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public service and stylist catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServices)
		api.GET("/services/:category", hb.ListServicesByCategory)
		api.GET("/stylists", hb.ListStylists)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PATCH("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/session/:sessionID/advance", hb.AdvanceSession)
		bookingGroup.POST("/session/:sessionID/retreat", hb.RetreatSession)
		bookingGroup.POST("/session/:sessionID/receipt", hb.UploadReceipt)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)

		bookingGroup.POST("/rate", hb.RateExperience)
		bookingGroup.GET("/loyalty/:email", hb.GetLoyalty)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLogin)

		protected := adminGroup.Group("")
		protected.Use(middleware.AdminAuthMiddleware())

		protected.POST("/logout", hb.AdminHandler.LogoutHandler)

		protected.GET("/bookings", hb.AdminHandler.GetAllBookingsHandler)
		protected.GET("/bookings/:id", hb.AdminHandler.GetBookingHandler)
		protected.PUT("/bookings/:id/status", hb.AdminHandler.UpdateBookingStatusHandler)
		protected.PUT("/bookings/:id/payment-status", hb.AdminHandler.UpdatePaymentStatusHandler)
		protected.PUT("/bookings/:id/reassign", hb.AdminHandler.ReassignBookingHandler)

		protected.POST("/stylists", hb.ResourceHandler.CreateStylistHandler)
		protected.PUT("/stylists/:id", hb.ResourceHandler.UpdateStylistHandler)
		protected.DELETE("/stylists/:id", hb.ResourceHandler.DeleteStylistHandler)

		protected.GET("/vans", hb.ResourceHandler.GetAllVansHandler)
		protected.POST("/vans", hb.ResourceHandler.CreateVanHandler)
		protected.PUT("/vans/:id", hb.ResourceHandler.UpdateVanHandler)
		protected.DELETE("/vans/:id", hb.ResourceHandler.DeleteVanHandler)

		protected.GET("/promotions", hb.ResourceHandler.GetAllPromotionsHandler)
		protected.POST("/promotions", hb.ResourceHandler.CreatePromotionHandler)
		protected.PUT("/promotions/:id", hb.ResourceHandler.UpdatePromotionHandler)
		protected.DELETE("/promotions/:id", hb.ResourceHandler.DeletePromotionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm GlamVan"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
