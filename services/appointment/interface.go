package appointment

import (
	accountRepo "mediflow/database/repository/account"
	appointmentRepo "mediflow/database/repository/appointment"
	"mediflow/models"
	"mediflow/services/notification"
	"mediflow/services/schedule"

	"github.com/hibiken/asynq"
)

// AppointmentService manages the appointment lifecycle:
// pending -> approved/rejected, approved -> completed, and patient
// cancellation of pending or approved appointments.
type AppointmentService interface {
	// RequestAppointment creates a pending consultation request.
	RequestAppointment(patientID string, input models.RequestAppointmentInput) (*models.Appointment, error)
	// GetPatientAppointments lists a patient's own appointments.
	GetPatientAppointments(patientID string) ([]models.Appointment, error)
	// GetDoctorAppointments lists a doctor's appointments, optionally by status.
	GetDoctorAppointments(doctorID, status string) ([]models.Appointment, error)
	// GetAllAppointments lists every appointment (admin view).
	GetAllAppointments() ([]models.Appointment, error)
	// ConfirmAppointment validates the chosen date/time against the doctor's
	// schedule and commits pending -> approved.
	ConfirmAppointment(doctorID, appointmentID string, input models.ConfirmAppointmentInput) (*models.Appointment, error)
	// RejectAppointment transitions pending -> rejected with a reason.
	RejectAppointment(doctorID, appointmentID, reason string) (*models.Appointment, error)
	// CompleteAppointment transitions approved -> completed.
	CompleteAppointment(doctorID, appointmentID string) (*models.Appointment, error)
	// CancelAppointment lets the requesting patient cancel a pending or
	// approved appointment.
	CancelAppointment(patientID, appointmentID string) (*models.Appointment, error)
}

// DefaultAppointmentService is the production implementation. Notifier and
// Reminders are optional; when nil the corresponding side effects are skipped.
type DefaultAppointmentService struct {
	Repo        appointmentRepo.AppointmentRepository
	Accounts    accountRepo.AccountRepository
	ScheduleSvc schedule.ScheduleService
	Notifier    notification.NotificationService
	Reminders   *asynq.Client
}
