package routes

import (
	"time"

	"koobings/handlers"
	"koobings/middleware"
	"koobings/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBusinessRoutes registers tenant account endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	{
		api.POST("/register", hb.RegisterBusinessHandler)
		api.POST("/login", hb.AuthenticateBusinessHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireKind(utils.TokenKindBusiness))
		protected.GET("/me", hb.GetBusinessHandler)
		protected.PUT("/settings", hb.UpdateBusinessSettingsHandler)
	}
}

// RegisterAuthRoutes registers shared auth endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterStaffRoutes registers staff management and schedule endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/login", hb.AuthenticateStaffHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("", hb.ListStaffHandler)
		protected.GET("/:id", hb.GetStaffHandler)
		protected.GET("/:id/schedule", hb.GetStaffScheduleHandler)
		protected.GET("/:id/unavailability", hb.ListUnavailabilityHandler)

		// Mutations need the business owner or a staff admin.
		admin := protected.Group("")
		admin.Use(middleware.RequireRole("ADMIN"))
		admin.POST("", hb.CreateStaffHandler)
		admin.PUT("/:id", hb.UpdateStaffHandler)
		admin.DELETE("/:id", hb.DeleteStaffHandler)
		admin.PUT("/:id/schedule", hb.SetStaffScheduleHandler)
		admin.POST("/:id/unavailability", hb.AddUnavailabilityHandler)
		admin.DELETE("/:id/unavailability/:uid", hb.RemoveUnavailabilityHandler)
	}
}

// RegisterCatalogRoutes registers service catalogue endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole("ADMIN"))
		admin.POST("", hb.CreateServiceHandler)
		admin.PUT("/:id", hb.UpdateServiceHandler)
		admin.DELETE("/:id", hb.DeleteServiceHandler)
	}
}

// RegisterClientRoutes registers customer record endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateClientHandler)
		api.GET("", hb.ListClientsHandler)
		api.GET("/:id", hb.GetClientHandler)
		api.PUT("/:id", hb.UpdateClientHandler)
		api.DELETE("/:id", hb.DeleteClientHandler)
		api.GET("/:id/appointments", hb.ClientAppointmentsHandler)
	}
}

// RegisterAvailabilityRoutes registers dashboard slot endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.GetDaySlotsHandler)
		api.GET("/week", hb.GetWeekSlotsHandler)
	}
}

// RegisterAppointmentRoutes registers dashboard appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.BookHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id/accept", hb.AcceptHandler)
		api.PUT("/:id/reject", hb.RejectHandler)
		api.PUT("/:id/cancel", hb.CancelHandler)
		api.PUT("/:id/complete", hb.CompleteHandler)
		api.PUT("/:id/no-show", hb.NoShowHandler)
	}
}

// RegisterPublicRoutes registers the unauthenticated customer portal.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	public := r.Group("/api/public/:businessSlug")
	{
		public.GET("/services", hb.PublicListServicesHandler)
		public.GET("/staff", hb.PublicListStaffHandler)
		public.GET("/availability", hb.PublicAvailabilityHandler)
		public.POST("/booking/session", hb.InitiateSessionHandler)
		public.PUT("/booking/session/:sessionId", hb.UpdateSessionHandler)
		public.POST("/booking/session/:sessionId/confirm", hb.ConfirmSessionHandler)
		public.DELETE("/booking/session/:sessionId", hb.CancelSessionHandler)
	}
}

// RegisterHealthRoute registers the dependency health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBusinessRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
