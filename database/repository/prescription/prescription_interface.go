package prescriptionRepo

import "mediflow/models"

// PrescriptionRepository defines methods for prescription data access.
type PrescriptionRepository interface {
	// Create inserts a new prescription record.
	Create(prescription *models.Prescription) error
	// GetByID retrieves a prescription by its unique ID, or (nil, nil) if absent.
	GetByID(id string) (*models.Prescription, error)
	// GetByPatient retrieves all prescriptions issued to a patient.
	GetByPatient(patientID string) ([]models.Prescription, error)
	// GetByDoctor retrieves all prescriptions issued by a doctor.
	GetByDoctor(doctorID string) ([]models.Prescription, error)
	// GetByAppointment retrieves prescriptions attached to an appointment.
	GetByAppointment(appointmentID string) ([]models.Prescription, error)
}
