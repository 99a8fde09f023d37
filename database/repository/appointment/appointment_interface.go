package appointmentRepo

import (
	"errors"

	"mediflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Sentinel errors surfaced by ConfirmSlot so the service layer can report
// them as validation outcomes rather than internal failures.
var (
	// ErrSlotTaken means another approved appointment already holds the same
	// doctor/date/time combination.
	ErrSlotTaken = errors.New("appointment slot already taken")
	// ErrNotPending means the appointment is missing or no longer pending.
	ErrNotPending = errors.New("appointment not found or not pending")
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(appointment *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID, or (nil, nil) if absent.
	GetByID(id string) (*models.Appointment, error)
	// GetByPatient retrieves all appointments requested by a patient.
	GetByPatient(patientID string) ([]models.Appointment, error)
	// GetByDoctor retrieves a doctor's appointments, optionally filtered by status.
	GetByDoctor(doctorID, status string) ([]models.Appointment, error)
	// GetAll retrieves all appointments (admin listing).
	GetAll() ([]models.Appointment, error)
	// GetApprovedTimes returns the 24-hour times of approved appointments for
	// a doctor on a date, for marking slots as booked.
	GetApprovedTimes(doctorID, date string) ([]string, error)
	// ConfirmSlot atomically transitions a pending appointment to approved
	// with the chosen date and time. Returns ErrNotPending if the appointment
	// is missing or not pending, and ErrSlotTaken if the slot uniqueness
	// constraint rejects the write.
	ConfirmSlot(id, date, timeOfDay string) error
	// UpdateWithDocument applies a raw update document to an appointment.
	UpdateWithDocument(id string, update bson.M) error
}
