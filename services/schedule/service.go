package schedule

import (
	"fmt"
	"time"

	"mediflow/models"
	"mediflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func (s *DefaultScheduleService) AssignSchedule(req models.AssignScheduleRequest) (*models.ScheduleInterval, error) {
	interval, err := s.buildInterval(req)
	if err != nil {
		return nil, err
	}

	doctor, err := s.Accounts.GetByID(req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}
	if doctor == nil || doctor.Role != models.RoleDoctor {
		return nil, NotFoundError{Reason: fmt.Sprintf("doctor %s not found", req.DoctorID)}
	}

	if err := s.checkOverlap(interval, ""); err != nil {
		return nil, err
	}

	interval.ID = uuid.New().String()
	interval.CreatedAt = time.Now()
	interval.UpdatedAt = interval.CreatedAt
	if err := s.Repo.Create(interval); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("schedule interval assigned",
		zap.String("doctorId", interval.DoctorID),
		zap.String("startDate", interval.StartDate),
		zap.String("endDate", interval.EndDate))
	return interval, nil
}

func (s *DefaultScheduleService) UpdateSchedule(id string, req models.AssignScheduleRequest) (*models.ScheduleInterval, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NotFoundError{Reason: fmt.Sprintf("schedule interval %s not found", id)}
	}

	interval, err := s.buildInterval(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkOverlap(interval, id); err != nil {
		return nil, err
	}

	interval.ID = id
	interval.CreatedAt = existing.CreatedAt
	interval.UpdatedAt = time.Now()
	if err := s.Repo.Update(interval); err != nil {
		return nil, err
	}
	return interval, nil
}

func (s *DefaultScheduleService) DeleteSchedule(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultScheduleService) GetDoctorSchedules(doctorID string) ([]models.ScheduleInterval, error) {
	return s.Repo.GetByDoctor(doctorID)
}

// FindCoveringInterval applies the availability rule: a holiday or leave
// interval covering the date grants no availability even when a broader
// working interval also covers it; otherwise the first covering working
// interval wins.
func (s *DefaultScheduleService) FindCoveringInterval(doctorID, date string) (*models.ScheduleInterval, error) {
	covering, err := s.Repo.GetCovering(doctorID, date)
	if err != nil {
		return nil, err
	}

	var match *models.ScheduleInterval
	for i := range covering {
		iv := covering[i]
		if iv.IsHoliday || iv.IsOnLeave {
			return nil, nil
		}
		if match == nil {
			match = &iv
		}
	}
	return match, nil
}

// buildInterval validates the request and returns a normalized interval with
// canonical 24-hour times.
func (s *DefaultScheduleService) buildInterval(req models.AssignScheduleRequest) (*models.ScheduleInterval, error) {
	if _, err := time.Parse(dateLayout, req.StartDate); err != nil {
		return nil, ValidationError{Reason: fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", req.StartDate)}
	}
	if _, err := time.Parse(dateLayout, req.EndDate); err != nil {
		return nil, ValidationError{Reason: fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", req.EndDate)}
	}
	if req.StartDate > req.EndDate {
		return nil, ValidationError{Reason: "start date must not be after end date"}
	}

	startTime, err := utils.To24Hour(req.DailyStartTime)
	if err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}
	endTime, err := utils.To24Hour(req.DailyEndTime)
	if err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}
	if startTime >= endTime {
		return nil, ValidationError{Reason: "daily start time must be before daily end time"}
	}

	return &models.ScheduleInterval{
		DoctorID:       req.DoctorID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DailyStartTime: startTime,
		DailyEndTime:   endTime,
		IsHoliday:      req.IsHoliday,
		IsOnLeave:      req.IsOnLeave,
	}, nil
}

// checkOverlap rejects a working interval that shares days with another
// working interval for the same doctor. Holiday and leave intervals are
// exceptions layered over working intervals, so they may overlap freely.
func (s *DefaultScheduleService) checkOverlap(interval *models.ScheduleInterval, excludeID string) error {
	if interval.IsHoliday || interval.IsOnLeave {
		return nil
	}

	existing, err := s.Repo.GetByDoctor(interval.DoctorID)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == excludeID || other.IsHoliday || other.IsOnLeave {
			continue
		}
		if interval.Overlaps(other) {
			return ConflictError{Reason: fmt.Sprintf(
				"schedule overlaps existing interval %s to %s", other.StartDate, other.EndDate)}
		}
	}
	return nil
}
