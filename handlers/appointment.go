package handlers

import (
	"net/http"

	"mediflow/models"
	"mediflow/services/appointment"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the appointment lifecycle endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// RequestAppointmentHandler creates a pending consultation request (patient).
func (h *AppointmentHandler) RequestAppointmentHandler(c *gin.Context) {
	var input models.RequestAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.RequestAppointment(c.GetString("accountID"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// MyAppointmentsHandler lists the authenticated patient's appointments.
func (h *AppointmentHandler) MyAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.GetPatientAppointments(c.GetString("accountID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// DoctorAppointmentsHandler lists the authenticated doctor's appointments,
// optionally filtered by ?status=.
func (h *AppointmentHandler) DoctorAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.GetDoctorAppointments(c.GetString("accountID"), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// AllAppointmentsHandler lists every appointment (admin).
func (h *AppointmentHandler) AllAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.GetAllAppointments()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ConfirmAppointmentHandler commits pending -> approved at the chosen
// date and time, after schedule validation (doctor).
func (h *AppointmentHandler) ConfirmAppointmentHandler(c *gin.Context) {
	var input models.ConfirmAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.ConfirmAppointment(c.GetString("accountID"), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RejectAppointmentHandler transitions pending -> rejected (doctor).
func (h *AppointmentHandler) RejectAppointmentHandler(c *gin.Context) {
	var input models.RejectAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.RejectAppointment(c.GetString("accountID"), c.Param("id"), input.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CompleteAppointmentHandler transitions approved -> completed (doctor).
func (h *AppointmentHandler) CompleteAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.CompleteAppointment(c.GetString("accountID"), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler lets the requesting patient cancel a pending or
// approved appointment.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.CancelAppointment(c.GetString("accountID"), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
