package schedule

// ValidationError signals a rejected schedule payload (bad dates, bad times,
// inverted ranges).
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// ConflictError signals that a new interval overlaps an existing working
// interval for the same doctor.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return e.Reason
}

// NotFoundError signals a missing doctor or schedule interval.
type NotFoundError struct {
	Reason string
}

func (e NotFoundError) Error() string {
	return e.Reason
}
