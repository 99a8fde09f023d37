package schedule

import (
	accountRepo "mediflow/database/repository/account"
	appointmentRepo "mediflow/database/repository/appointment"
	scheduleRepo "mediflow/database/repository/schedule"
	"mediflow/models"
)

// ScheduleService manages doctor schedule intervals and derives selectable
// appointment slots from them.
type ScheduleService interface {
	// AssignSchedule creates a schedule interval for a doctor, rejecting
	// invalid ranges and overlaps with existing working intervals.
	AssignSchedule(req models.AssignScheduleRequest) (*models.ScheduleInterval, error)
	// UpdateSchedule replaces an existing interval, applying the same checks.
	UpdateSchedule(id string, req models.AssignScheduleRequest) (*models.ScheduleInterval, error)
	// DeleteSchedule removes an interval.
	DeleteSchedule(id string) error
	// GetDoctorSchedules lists a doctor's intervals.
	GetDoctorSchedules(doctorID string) ([]models.ScheduleInterval, error)
	// FindCoveringInterval returns the working interval covering the date, or
	// (nil, nil) when the date is uncovered or falls on a holiday/leave.
	FindCoveringInterval(doctorID, date string) (*models.ScheduleInterval, error)
	// DaySlots enumerates the selectable 15-minute slots for a doctor on a
	// date, with slots held by approved appointments marked as booked.
	DaySlots(doctorID, date string) (*models.DaySlotsResponse, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo         scheduleRepo.ScheduleRepository
	Accounts     accountRepo.AccountRepository
	Appointments appointmentRepo.AppointmentRepository
}
