package appointment

import (
	"context"
	"fmt"
	"time"

	"mediflow/models"
	"mediflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultAppointmentService) RequestAppointment(patientID string, input models.RequestAppointmentInput) (*models.Appointment, error) {
	doctor, err := s.Accounts.GetByID(input.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}
	if doctor == nil || doctor.Role != models.RoleDoctor {
		return nil, NotFoundError{Reason: fmt.Sprintf("doctor %s not found", input.DoctorID)}
	}

	now := time.Now()
	appointment := &models.Appointment{
		ID:        uuid.New().String(),
		PatientID: patientID,
		DoctorID:  input.DoctorID,
		Reason:    input.Reason,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(appointment); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("appointment requested",
		zap.String("appointmentId", appointment.ID),
		zap.String("patientId", patientID),
		zap.String("doctorId", input.DoctorID))
	return appointment, nil
}

func (s *DefaultAppointmentService) GetPatientAppointments(patientID string) ([]models.Appointment, error) {
	return s.Repo.GetByPatient(patientID)
}

func (s *DefaultAppointmentService) GetDoctorAppointments(doctorID, status string) ([]models.Appointment, error) {
	return s.Repo.GetByDoctor(doctorID, status)
}

func (s *DefaultAppointmentService) GetAllAppointments() ([]models.Appointment, error) {
	return s.Repo.GetAll()
}

func (s *DefaultAppointmentService) RejectAppointment(doctorID, appointmentID, reason string) (*models.Appointment, error) {
	appt, err := s.getOwned(appointmentID, doctorID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending {
		return nil, ValidationError{Reason: fmt.Sprintf("cannot reject an appointment in status %q", appt.Status)}
	}

	update := bson.M{"$set": bson.M{
		"status":       models.StatusRejected,
		"rejectReason": reason,
		"updatedAt":    time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(appointmentID, update); err != nil {
		return nil, err
	}

	s.notify(appt.PatientID, "Appointment update",
		"Your appointment request was declined.",
		map[string]string{"type": "appointment_rejected", "appointmentId": appt.ID})

	return s.Repo.GetByID(appointmentID)
}

func (s *DefaultAppointmentService) CompleteAppointment(doctorID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.getOwned(appointmentID, doctorID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusApproved {
		return nil, ValidationError{Reason: fmt.Sprintf("cannot complete an appointment in status %q", appt.Status)}
	}

	update := bson.M{"$set": bson.M{
		"status":    models.StatusCompleted,
		"updatedAt": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(appointmentID, update); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(appointmentID)
}

func (s *DefaultAppointmentService) CancelAppointment(patientID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NotFoundError{Reason: fmt.Sprintf("appointment %s not found", appointmentID)}
	}
	if appt.PatientID != patientID {
		return nil, ForbiddenError{Reason: "appointment belongs to another patient"}
	}
	if appt.Status != models.StatusPending && appt.Status != models.StatusApproved {
		return nil, ValidationError{Reason: fmt.Sprintf("cannot cancel an appointment in status %q", appt.Status)}
	}

	update := bson.M{"$set": bson.M{
		"status":    models.StatusCancelled,
		"updatedAt": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(appointmentID, update); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(appointmentID)
}

// getOwned fetches an appointment and checks doctor ownership.
func (s *DefaultAppointmentService) getOwned(appointmentID, doctorID string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NotFoundError{Reason: fmt.Sprintf("appointment %s not found", appointmentID)}
	}
	if appt.DoctorID != doctorID {
		return nil, ForbiddenError{Reason: "appointment belongs to another doctor"}
	}
	return appt, nil
}

// notify sends a push and logs failures without propagating them.
func (s *DefaultAppointmentService) notify(accountID, title, body string, data map[string]string) {
	if s.Notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Notifier.SendPushNotification(ctx, accountID, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to send appointment notification",
			zap.String("accountId", accountID), zap.Error(err))
	}
}
