package routes

import (
	"net/http"

	"github.com/DigitariaWebs/cheminement-sub002/handlers"
	"github.com/DigitariaWebs/cheminement-sub002/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints for the availability and booking engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterProfessionalRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterAvailabilityRoutes registers the public slot query endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:professionalId", hb.GetAvailableSlots)
	}
}

// RegisterBookingRoutes registers the booking commit endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Guest bookings stay public; the rate limiter at the router level
		// shields the commit path from abuse.
		api.POST("/guest", hb.GuestBookAppointment)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(middleware.RoleClient))
		protected.POST("", hb.BookAppointment)
	}
}

// RegisterAppointmentRoutes registers lifecycle and listing endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		staff := api.Group("")
		staff.Use(middleware.JWTAuthMiddleware(middleware.RoleProfessional, middleware.RoleAdmin))
		staff.POST("/:id/confirm", hb.ConfirmAppointment)
		staff.POST("/:id/complete", hb.CompleteAppointment)
		staff.POST("/:id/no-show", hb.NoShowAppointment)

		// Clients may cancel their own bookings; professionals and admins may
		// cancel on a client's behalf.
		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware())
		authed.POST("/:id/cancel", hb.CancelAppointment)
	}

	clients := r.Group("/api/clients")
	{
		clients.Use(middleware.JWTAuthMiddleware())
		clients.GET("/:id/appointments", hb.ListClientAppointments)
	}
}

// RegisterProfessionalRoutes registers availability template management and
// the professional's day schedule.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.GET("/:id/availability", hb.GetAvailabilityTemplate)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(middleware.RoleProfessional, middleware.RoleAdmin))
		protected.PUT("/:id/availability", hb.SetAvailability)
		protected.GET("/:id/appointments", hb.ListProfessionalDay)
	}
}
