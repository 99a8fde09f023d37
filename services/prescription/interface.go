package prescription

import (
	appointmentRepo "mediflow/database/repository/appointment"
	prescriptionRepo "mediflow/database/repository/prescription"
	"mediflow/models"
	"mediflow/services/storage"
)

// PrescriptionService manages prescriptions issued by doctors against
// approved or completed appointments.
type PrescriptionService interface {
	// CreatePrescription issues a prescription; attachmentPath, when
	// non-empty, is a local temp file to upload as the attachment.
	CreatePrescription(doctorID string, input models.CreatePrescriptionInput, attachmentPath string) (*models.Prescription, error)
	// GetPatientPrescriptions lists prescriptions issued to a patient.
	GetPatientPrescriptions(patientID string) ([]models.Prescription, error)
	// GetDoctorPrescriptions lists prescriptions issued by a doctor.
	GetDoctorPrescriptions(doctorID string) ([]models.Prescription, error)
	// GetAttachmentURL resolves a download URL for a prescription attachment.
	// Only the issuing doctor and the prescribed patient may resolve it.
	GetAttachmentURL(requesterID, prescriptionID string) (string, error)
}

// DefaultPrescriptionService is the production implementation. Storage may be
// nil, in which case attachments are rejected.
type DefaultPrescriptionService struct {
	Repo         prescriptionRepo.PrescriptionRepository
	Appointments appointmentRepo.AppointmentRepository
	Storage      storage.StorageService
}
