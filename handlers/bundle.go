package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the engine's HTTP handlers for route registration.
type HandlerBundle struct {
	// Availability (read path).
	GetAvailableSlots gin.HandlerFunc

	// Booking (commit path).
	BookAppointment      gin.HandlerFunc
	GuestBookAppointment gin.HandlerFunc

	// Appointment lifecycle.
	ConfirmAppointment     gin.HandlerFunc
	CancelAppointment      gin.HandlerFunc
	CompleteAppointment    gin.HandlerFunc
	NoShowAppointment      gin.HandlerFunc
	ListProfessionalDay    gin.HandlerFunc
	ListClientAppointments gin.HandlerFunc

	// Professional availability template management.
	SetAvailability         gin.HandlerFunc
	GetAvailabilityTemplate gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from a SchedulingHandler.
func NewHandlerBundle(h *SchedulingHandler) *HandlerBundle {
	return &HandlerBundle{
		GetAvailableSlots:       h.GetAvailableSlotsHandler,
		BookAppointment:         h.BookAppointmentHandler,
		GuestBookAppointment:    h.GuestBookAppointmentHandler,
		ConfirmAppointment:      h.ConfirmAppointmentHandler,
		CancelAppointment:       h.CancelAppointmentHandler,
		CompleteAppointment:     h.CompleteAppointmentHandler,
		NoShowAppointment:       h.NoShowAppointmentHandler,
		ListProfessionalDay:     h.ListProfessionalDayHandler,
		ListClientAppointments:  h.ListClientAppointmentsHandler,
		SetAvailability:         h.SetAvailabilityHandler,
		GetAvailabilityTemplate: h.GetAvailabilityTemplateHandler,
	}
}
