package handlers

import (
	"errors"
	"net/http"

	"github.com/DigitariaWebs/cheminement-sub002/services/scheduling"
	"github.com/DigitariaWebs/cheminement-sub002/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondSchedulingError maps engine errors onto the JSON error envelope.
// Slot conflicts are expected under concurrent booking and logged at debug,
// not as errors.
func respondSchedulingError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	var schedErr *scheduling.Error
	if errors.As(err, &schedErr) {
		if schedErr.Code == scheduling.CodeSlotAlreadyBooked {
			logger.Debug("slot conflict", zap.String("path", c.FullPath()))
		} else {
			logger.Warn("scheduling request rejected",
				zap.String("path", c.FullPath()),
				zap.String("code", schedErr.Code),
				zap.Error(err))
		}
		c.JSON(scheduling.HTTPStatus(err), utils.ErrorResponse{
			Message: schedErr.Message,
			Code:    schedErr.Code,
		})
		return
	}

	logger.Error("unexpected scheduling failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
		Message: "Internal Server Error",
	})
}
