package handlers

import (
	"net/http"

	"github.com/DigitariaWebs/cheminement-sub002/models"

	"github.com/gin-gonic/gin"
)

// ConfirmAppointmentHandler promotes a pending intake booking to scheduled.
func (h *SchedulingHandler) ConfirmAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	appt, err := h.Service.ConfirmAppointment(c.Request.Context(), id)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CancelAppointmentHandler cancels an appointment, freeing its slot.
func (h *SchedulingHandler) CancelAppointmentHandler(c *gin.Context) {
	h.transition(c, models.StatusCancelled)
}

// CompleteAppointmentHandler marks a held session as completed.
func (h *SchedulingHandler) CompleteAppointmentHandler(c *gin.Context) {
	h.transition(c, models.StatusCompleted)
}

// NoShowAppointmentHandler records a missed session.
func (h *SchedulingHandler) NoShowAppointmentHandler(c *gin.Context) {
	h.transition(c, models.StatusNoShow)
}

func (h *SchedulingHandler) transition(c *gin.Context, target string) {
	id := c.Param("id")
	appt, err := h.Service.TransitionAppointment(c.Request.Context(), id, target)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// ListProfessionalDayHandler returns a professional's schedule for one date.
func (h *SchedulingHandler) ListProfessionalDayHandler(c *gin.Context) {
	professionalID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	appts, err := h.Service.ListProfessionalDay(c.Request.Context(), professionalID, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListClientAppointmentsHandler returns the authenticated client's history.
// Admins may query any client.
func (h *SchedulingHandler) ListClientAppointmentsHandler(c *gin.Context) {
	clientID := c.Param("id")
	if !actorMayAccess(c, clientID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	appts, err := h.Service.ListClientAppointments(c.Request.Context(), clientID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// actorMayAccess reports whether the authenticated actor owns the resource or
// is an admin.
func actorMayAccess(c *gin.Context, ownerID string) bool {
	role, _ := c.Get("actorRole")
	if role == "admin" {
		return true
	}
	actorID, _ := c.Get("actorID")
	return actorID == ownerID
}
