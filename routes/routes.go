package routes

import (
	"net/http"
	"time"

	"hudumahub/handlers"
	"hudumahub/middleware"
	"hudumahub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers customer account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetUserProfileHandler)
		api.PUT("/me", hb.User.UpdateUserProfileHandler)
		api.PUT("/me/fcm-token", hb.User.UpdateUserFCMTokenHandler)
	}
}

// RegisterProviderRoutes registers provider account and discovery endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public provider endpoints (registration, login, browsing).
		api.POST("/register", hb.Provider.RegisterProviderHandler)
		api.POST("/login", hb.Provider.AuthenticateProviderHandler)
		api.GET("/nearby", hb.Provider.NearbyProvidersHandler)
		api.GET("/id/:id", hb.Provider.GetProviderByIDHandler)

		// Endpoints that read or modify the caller's own provider record.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		protected.GET("/me", hb.Provider.GetProviderProfileHandler)
		protected.PUT("/me", hb.Provider.UpdateProviderProfileHandler)
		protected.PUT("/me/auto-accept", hb.Provider.SetAutoAcceptHandler)
		protected.PUT("/me/fcm-token", hb.Provider.UpdateProviderFCMTokenHandler)
	}
}

// RegisterBookingRoutes sets up the customer-side booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("", hb.Booking.RequestBookingHandler)
		bookingGroup.GET("", hb.Booking.ListCustomerBookingsHandler)
		bookingGroup.GET("/:id", hb.Booking.GetBookingHandler)
		bookingGroup.PUT("/:id/cancel", hb.Booking.CancelBookingHandler)
		bookingGroup.PUT("/:id/quotation/accept", hb.Booking.AcceptQuotationHandler)
		bookingGroup.PUT("/:id/quotation/decline", hb.Booking.DeclineQuotationHandler)
		bookingGroup.POST("/:id/confirm", hb.Booking.ConfirmAndPayHandler)
		bookingGroup.POST("/:id/pay-invoice", hb.Booking.PayInvoiceHandler)
		bookingGroup.POST("/:id/review", hb.Booking.AddReviewHandler)
		bookingGroup.POST("/:id/chat", hb.Booking.AppendChatMessageHandler)
	}
}

// RegisterProviderBookingRoutes sets up the provider-side booking lifecycle
// endpoints.
func RegisterProviderBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/provider/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		bookingGroup.GET("", hb.Booking.ListProviderBookingsHandler)
		bookingGroup.GET("/earnings", hb.Booking.ProviderEarningsHandler)
		bookingGroup.GET("/:id", hb.Booking.GetBookingHandler)
		bookingGroup.PUT("/:id/accept", hb.Booking.AcceptBookingHandler)
		bookingGroup.PUT("/:id/decline", hb.Booking.DeclineBookingHandler)
		bookingGroup.PUT("/:id/cancel", hb.Booking.CancelBookingHandler)
		bookingGroup.PUT("/:id/quotation", hb.Booking.SendQuotationHandler)
		bookingGroup.PUT("/:id/start", hb.Booking.StartJobHandler)
		bookingGroup.PUT("/:id/complete", hb.Booking.CompleteJobHandler)
		bookingGroup.POST("/:id/chat", hb.Booking.AppendChatMessageHandler)
	}
}

// RegisterNotificationRoutes registers the inbox endpoints for both roles.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	userGroup := r.Group("/api/notifications")
	{
		userGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		userGroup.GET("", hb.Notification.ListNotificationsHandler)
		userGroup.PUT("/:id/read", hb.Notification.MarkNotificationReadHandler)
	}

	providerGroup := r.Group("/api/provider/notifications")
	{
		providerGroup.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		providerGroup.GET("", hb.Notification.ListNotificationsHandler)
		providerGroup.PUT("/:id/read", hb.Notification.MarkNotificationReadHandler)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		api.POST("/decide/:id", hb.AI.DecideBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
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

	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProviderBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
