package prescription

// NotFoundError signals a missing prescription or appointment.
type NotFoundError struct {
	Reason string
}

func (e NotFoundError) Error() string {
	return e.Reason
}

// ForbiddenError signals a caller outside the prescription's doctor/patient pair.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return e.Reason
}

// ValidationError is a rejected prescription payload.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}
