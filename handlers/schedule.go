package handlers

import (
	"net/http"

	"mediflow/models"
	"mediflow/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes schedule administration and the public slot listing.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// AssignScheduleHandler creates a schedule interval for a doctor (admin).
func (h *ScheduleHandler) AssignScheduleHandler(c *gin.Context) {
	var req models.AssignScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	interval, err := h.Service.AssignSchedule(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interval)
}

// UpdateScheduleHandler replaces an existing schedule interval (admin).
func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	var req models.AssignScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	interval, err := h.Service.UpdateSchedule(c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interval)
}

// DeleteScheduleHandler removes a schedule interval (admin).
func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	if err := h.Service.DeleteSchedule(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule deleted"})
}

// DoctorSchedulesHandler lists the intervals assigned to a doctor (admin).
func (h *ScheduleHandler) DoctorSchedulesHandler(c *gin.Context) {
	intervals, err := h.Service.GetDoctorSchedules(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": intervals})
}

// MySchedulesHandler lists the authenticated doctor's own intervals.
func (h *ScheduleHandler) MySchedulesHandler(c *gin.Context) {
	intervals, err := h.Service.GetDoctorSchedules(c.GetString("accountID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": intervals})
}

// DaySlotsHandler enumerates a doctor's selectable slots for the date given
// in the query string.
func (h *ScheduleHandler) DaySlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	resp, err := h.Service.DaySlots(c.Param("id"), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
