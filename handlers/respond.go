package handlers

import (
	"errors"
	"net/http"

	"mediflow/services/account"
	"mediflow/services/appointment"
	"mediflow/services/prescription"
	"mediflow/services/schedule"
	"mediflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps typed service errors onto HTTP statuses. Anything
// unrecognized is an internal error and gets logged.
func respondServiceError(c *gin.Context, err error) {
	switch e := err.(type) {
	case account.NotFoundError, schedule.NotFoundError, appointment.NotFoundError, prescription.NotFoundError:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case appointment.ForbiddenError, prescription.ForbiddenError:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case account.ConflictError, schedule.ConflictError:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case schedule.ValidationError, prescription.ValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case appointment.ValidationError:
		resp := gin.H{"error": e.Reason}
		if e.ScheduleStart != "" {
			resp["scheduleHours"] = gin.H{"start": e.ScheduleStart, "end": e.ScheduleEnd}
		}
		c.JSON(http.StatusBadRequest, resp)
	default:
		if errors.Is(err, account.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
