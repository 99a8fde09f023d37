package scheduleRepo

import "mediflow/models"

// ScheduleRepository defines methods for schedule-interval data access.
type ScheduleRepository interface {
	// Create inserts a new schedule interval.
	Create(interval *models.ScheduleInterval) error
	// GetByID retrieves an interval by its unique ID, or (nil, nil) if absent.
	GetByID(id string) (*models.ScheduleInterval, error)
	// GetByDoctor retrieves all intervals for a doctor, newest range first.
	GetByDoctor(doctorID string) ([]models.ScheduleInterval, error)
	// GetCovering retrieves intervals whose date range contains the given
	// "2006-01-02" date, ordered by start date.
	GetCovering(doctorID, date string) ([]models.ScheduleInterval, error)
	// Update replaces an existing interval.
	Update(interval *models.ScheduleInterval) error
	// Delete removes an interval by its ID.
	Delete(id string) error
}
