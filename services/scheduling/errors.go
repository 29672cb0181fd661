package scheduling

import "errors"

var (
	// ErrMalformedSchedule signals invalid schedule input: a bad "HH:mm"
	// string, an interval whose start is not before its end, or a
	// non-positive duration. Callers must treat it as a caller error, never
	// as "no slots".
	ErrMalformedSchedule = errors.New("malformed schedule input")

	// Not-found conditions, distinct from an empty slot list.
	ErrBusinessNotFound = errors.New("business not found")
	ErrStaffNotFound    = errors.New("staff not found")
	ErrServiceNotFound  = errors.New("service not found")

	// ErrStaffNotAllowed is returned when the service restricts who may
	// perform it and the requested staff member is not on the list.
	ErrStaffNotAllowed = errors.New("staff member cannot perform this service")
)
