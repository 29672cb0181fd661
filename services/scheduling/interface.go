package scheduling

import (
	"context"

	"koobings/models"
)

// AvailabilityEngine answers "when can this staff member take this service"
// questions for the dashboard and the public portal.
type AvailabilityEngine interface {
	// GetDaySlots computes the candidate slots for one staff member,
	// service and calendar date. durationOverride, when positive, replaces
	// the service duration. An empty result (no schedule, day off) is not
	// an error; unknown entities surface as the package's not-found errors.
	GetDaySlots(ctx context.Context, businessID, staffID, serviceID, date string, durationOverride int) (*models.DayAvailability, error)

	// GetWeekSlots computes seven consecutive days starting weekIndex weeks
	// from today, for the dashboard calendar.
	GetWeekSlots(ctx context.Context, businessID, staffID, serviceID string, weekIndex int) (*models.WeekAvailability, error)
}
