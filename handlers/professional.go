package handlers

import (
	"net/http"

	"github.com/DigitariaWebs/cheminement-sub002/models"
	"github.com/DigitariaWebs/cheminement-sub002/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setAvailabilityRequest lets the break duration distinguish "omitted" from an
// explicit zero (back-to-back sessions are valid).
type setAvailabilityRequest struct {
	SessionDurationMinutes int                      `json:"sessionDurationMinutes"`
	BreakDurationMinutes   *int                     `json:"breakDurationMinutes"`
	Days                   []models.DayAvailability `json:"days" binding:"required"`
}

// SetAvailabilityHandler stores a professional's weekly availability template.
// Only the professional themselves or an admin may change it.
func (h *SchedulingHandler) SetAvailabilityHandler(c *gin.Context) {
	professionalID := c.Param("id")
	if !actorMayAccess(c, professionalID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var req setAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid availability template request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	breakMinutes := scheduling.DefaultBreakMinutes
	if req.BreakDurationMinutes != nil {
		breakMinutes = *req.BreakDurationMinutes
	}
	tmpl := models.WeeklyAvailabilityTemplate{
		SessionDurationMinutes: req.SessionDurationMinutes,
		BreakDurationMinutes:   breakMinutes,
		Days:                   req.Days,
	}

	stored, err := h.Service.SetWeeklyTemplate(c.Request.Context(), professionalID, tmpl)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability template updated",
		"availability": stored,
	})
}

// GetAvailabilityTemplateHandler returns the stored weekly template.
func (h *SchedulingHandler) GetAvailabilityTemplateHandler(c *gin.Context) {
	professionalID := c.Param("id")
	tmpl, err := h.Service.GetWeeklyTemplate(c.Request.Context(), professionalID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": tmpl})
}
