package booking

import "errors"

var (
	// ErrSessionNotFound covers missing and expired booking sessions alike.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrSlotUnavailable is returned when the requested start is not in the
	// staff member's available list, or when the transactional insert loses
	// the race to a concurrent booking.
	ErrSlotUnavailable = errors.New("requested slot is not available")

	// ErrInvalidTransition is returned for status changes the appointment
	// lifecycle does not permit.
	ErrInvalidTransition = errors.New("invalid appointment status transition")

	ErrAppointmentNotFound = errors.New("appointment not found")
)
