package appointment

import (
	"fmt"
	"time"

	appointmentRepo "mediflow/database/repository/appointment"
	"mediflow/models"
	"mediflow/services/tasks"
	"mediflow/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ConfirmAppointment decides whether the chosen date/time is valid against
// the doctor's schedule and, if so, commits the pending -> approved
// transition. Every expected failure (missing schedule, out-of-bounds time,
// malformed input, slot already taken) is a ValidationError carrying a
// human-readable reason; the appointment is left untouched on failure.
func (s *DefaultAppointmentService) ConfirmAppointment(doctorID, appointmentID string, input models.ConfirmAppointmentInput) (*models.Appointment, error) {
	appt, err := s.getOwned(appointmentID, doctorID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending {
		return nil, ValidationError{Reason: fmt.Sprintf("cannot confirm an appointment in status %q", appt.Status)}
	}

	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, ValidationError{Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", input.Date)}
	}
	chosen, err := utils.To24Hour(input.Time)
	if err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}

	interval, err := s.ScheduleSvc.FindCoveringInterval(doctorID, input.Date)
	if err != nil {
		return nil, err
	}
	if interval == nil {
		return nil, ValidationError{Reason: fmt.Sprintf("no schedule found for doctor on %s", input.Date)}
	}

	// Both bounds are inclusive: a chosen time equal to the daily end time is
	// accepted.
	if chosen < interval.DailyStartTime || chosen > interval.DailyEndTime {
		startLabel, _ := utils.To12Hour(interval.DailyStartTime)
		endLabel, _ := utils.To12Hour(interval.DailyEndTime)
		return nil, ValidationError{
			Reason:        "chosen time is outside schedule hours",
			ScheduleStart: startLabel,
			ScheduleEnd:   endLabel,
		}
	}

	if err := s.Repo.ConfirmSlot(appointmentID, input.Date, chosen); err != nil {
		switch err {
		case appointmentRepo.ErrSlotTaken:
			return nil, ValidationError{Reason: fmt.Sprintf("the %s slot on %s is already booked", utils.MinuteLabelFromClock(chosen), input.Date)}
		case appointmentRepo.ErrNotPending:
			return nil, ValidationError{Reason: "appointment is no longer pending"}
		default:
			return nil, err
		}
	}

	utils.GetLogger().Info("appointment confirmed",
		zap.String("appointmentId", appointmentID),
		zap.String("doctorId", doctorID),
		zap.String("date", input.Date),
		zap.String("time", chosen))

	s.notify(appt.PatientID, "Appointment confirmed",
		fmt.Sprintf("Your appointment was confirmed for %s at %s.", input.Date, utils.MinuteLabelFromClock(chosen)),
		map[string]string{"type": "appointment_approved", "appointmentId": appt.ID})
	s.scheduleReminder(appt, input.Date, chosen)

	return s.Repo.GetByID(appointmentID)
}

// scheduleReminder enqueues a push reminder one hour before the appointment.
// Skipped when the reminder queue is not configured or the slot is too soon.
func (s *DefaultAppointmentService) scheduleReminder(appt *models.Appointment, date, timeOfDay string) {
	if s.Reminders == nil {
		return
	}

	startOfDay, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return
	}
	minute, err := utils.MinuteOfDay(timeOfDay)
	if err != nil {
		return
	}
	fireAt := startOfDay.Add(time.Duration(minute)*time.Minute - time.Hour)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("You have an appointment at %s.", utils.MinuteLabelFromClock(timeOfDay)),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder task",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
