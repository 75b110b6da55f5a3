package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/DigitariaWebs/cheminement-sub002/models"
	"github.com/DigitariaWebs/cheminement-sub002/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookAppointmentHandler commits a booking for an authenticated client. The
// client identity always comes from the token, never the payload.
func (h *SchedulingHandler) BookAppointmentHandler(c *gin.Context) {
	var req scheduling.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	actorID, exists := c.Get("actorID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Client not authenticated"})
		return
	}
	req.ClientID, _ = actorID.(string)
	req.Guest = nil

	appt, err := h.Service.BookAppointment(c.Request.Context(), req, time.Now())
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.notifyBookingConfirmed(appt)
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// GuestBookAppointmentHandler commits a booking for a visitor without an
// account. Guest bookings enter as pending and are confirmed by staff.
func (h *SchedulingHandler) GuestBookAppointmentHandler(c *gin.Context) {
	var req scheduling.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.ClientID = ""
	req.Pending = true

	appt, err := h.Service.BookAppointment(c.Request.Context(), req, time.Now())
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.notifyBookingConfirmed(appt)
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// notifyBookingConfirmed dispatches the confirmation without blocking the
// response; delivery failures are logged and never surfaced to the caller.
func (h *SchedulingHandler) notifyBookingConfirmed(appt *models.Appointment) {
	if h.Notifier == nil {
		return
	}
	go func(appt models.Appointment) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.Notifier.SendBookingConfirmation(ctx, &appt); err != nil {
			h.Logger.Warn("failed to send booking confirmation",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}(*appt)
}
