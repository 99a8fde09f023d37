package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"mediflow/models"
	"mediflow/services/prescription"
	"mediflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PrescriptionHandler exposes prescription issuance and retrieval endpoints.
type PrescriptionHandler struct {
	Service prescription.PrescriptionService
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(svc prescription.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{Service: svc}
}

// CreatePrescriptionHandler issues a prescription (doctor). The request is
// multipart form data: a "payload" field holding the JSON input and an
// optional "attachment" file.
func (h *PrescriptionHandler) CreatePrescriptionHandler(c *gin.Context) {
	payload := c.PostForm("payload")
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload form field is required"})
		return
	}

	var input models.CreatePrescriptionInput
	if err := json.Unmarshal([]byte(payload), &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if input.AppointmentID == "" || len(input.Medications) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointmentId and at least one medication are required"})
		return
	}

	attachmentPath := ""
	if file, err := c.FormFile("attachment"); err == nil {
		tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			utils.GetLogger().Error("failed to persist uploaded attachment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store attachment"})
			return
		}
		defer os.Remove(tmpPath)
		attachmentPath = tmpPath
	}

	pres, err := h.Service.CreatePrescription(c.GetString("accountID"), input, attachmentPath)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pres)
}

// MyPrescriptionsHandler lists the authenticated patient's prescriptions.
func (h *PrescriptionHandler) MyPrescriptionsHandler(c *gin.Context) {
	list, err := h.Service.GetPatientPrescriptions(c.GetString("accountID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescriptions": list})
}

// IssuedPrescriptionsHandler lists prescriptions issued by the
// authenticated doctor.
func (h *PrescriptionHandler) IssuedPrescriptionsHandler(c *gin.Context) {
	list, err := h.Service.GetDoctorPrescriptions(c.GetString("accountID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescriptions": list})
}

// AttachmentURLHandler resolves the download URL of a prescription
// attachment for the prescribed patient or issuing doctor.
func (h *PrescriptionHandler) AttachmentURLHandler(c *gin.Context) {
	url, err := h.Service.GetAttachmentURL(c.GetString("accountID"), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
