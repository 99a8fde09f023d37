package prescription

import (
	"context"
	"fmt"
	"time"

	"mediflow/models"
	"mediflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const attachmentFolder = "prescriptions"

func (s *DefaultPrescriptionService) CreatePrescription(doctorID string, input models.CreatePrescriptionInput, attachmentPath string) (*models.Prescription, error) {
	appt, err := s.Appointments.GetByID(input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NotFoundError{Reason: fmt.Sprintf("appointment %s not found", input.AppointmentID)}
	}
	if appt.DoctorID != doctorID {
		return nil, ForbiddenError{Reason: "appointment belongs to another doctor"}
	}
	if appt.Status != models.StatusApproved && appt.Status != models.StatusCompleted {
		return nil, ValidationError{Reason: fmt.Sprintf("cannot prescribe against an appointment in status %q", appt.Status)}
	}

	attachmentID := ""
	if attachmentPath != "" {
		if s.Storage == nil {
			return nil, ValidationError{Reason: "attachment storage is not configured"}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		attachmentID, err = s.Storage.UploadFile(ctx, attachmentPath, attachmentFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload attachment: %w", err)
		}
	}

	p := &models.Prescription{
		ID:            uuid.New().String(),
		AppointmentID: appt.ID,
		DoctorID:      appt.DoctorID,
		PatientID:     appt.PatientID,
		Medications:   input.Medications,
		Notes:         input.Notes,
		AttachmentID:  attachmentID,
		CreatedAt:     time.Now(),
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("prescription created",
		zap.String("prescriptionId", p.ID),
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", doctorID))
	return p, nil
}

func (s *DefaultPrescriptionService) GetPatientPrescriptions(patientID string) ([]models.Prescription, error) {
	return s.Repo.GetByPatient(patientID)
}

func (s *DefaultPrescriptionService) GetDoctorPrescriptions(doctorID string) ([]models.Prescription, error) {
	return s.Repo.GetByDoctor(doctorID)
}

func (s *DefaultPrescriptionService) GetAttachmentURL(requesterID, prescriptionID string) (string, error) {
	p, err := s.Repo.GetByID(prescriptionID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", NotFoundError{Reason: fmt.Sprintf("prescription %s not found", prescriptionID)}
	}
	if requesterID != p.PatientID && requesterID != p.DoctorID {
		return "", ForbiddenError{Reason: "prescription belongs to another patient"}
	}
	if p.AttachmentID == "" {
		return "", NotFoundError{Reason: "prescription has no attachment"}
	}
	if s.Storage == nil {
		return "", ValidationError{Reason: "attachment storage is not configured"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Storage.GetDownloadURL(ctx, "image", p.AttachmentID)
}
