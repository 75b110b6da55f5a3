package handlers

import (
	"net/http"
	"time"

	"github.com/DigitariaWebs/cheminement-sub002/services/notification"
	"github.com/DigitariaWebs/cheminement-sub002/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the availability and booking engine over HTTP.
type SchedulingHandler struct {
	Service  scheduling.Service
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

// NewSchedulingHandler creates the handler set for the engine.
func NewSchedulingHandler(svc scheduling.Service, notifier notification.NotificationService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: svc, Notifier: notifier, Logger: logger}
}

// GetAvailableSlotsHandler serves the slot query endpoint. "now" is captured
// here, at the edge, and threaded through so the engine itself stays clock-free.
func (h *SchedulingHandler) GetAvailableSlotsHandler(c *gin.Context) {
	professionalID := c.Param("professionalId")
	date := c.Query("date")
	if professionalID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "professionalId and date are required"})
		return
	}

	result, err := h.Service.GetAvailableSlots(c.Request.Context(), professionalID, date, time.Now())
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
