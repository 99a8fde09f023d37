package appointment

import "fmt"

// NotFoundError signals a missing appointment or referenced account.
type NotFoundError struct {
	Reason string
}

func (e NotFoundError) Error() string {
	return e.Reason
}

// ForbiddenError signals that the caller does not own the appointment.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return e.Reason
}

// ValidationError is a rejected lifecycle transition or malformed payload.
// It is a user-facing outcome, never an internal failure.
type ValidationError struct {
	Reason string
	// ScheduleStart/ScheduleEnd carry the doctor's valid hours as 12-hour
	// display strings when the rejection was a schedule-bounds violation.
	ScheduleStart string
	ScheduleEnd   string
}

func (e ValidationError) Error() string {
	if e.ScheduleStart != "" {
		return fmt.Sprintf("%s (schedule hours: %s - %s)", e.Reason, e.ScheduleStart, e.ScheduleEnd)
	}
	return e.Reason
}
