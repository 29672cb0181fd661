package scheduling

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"koobings/models"
)

// ParseClock converts an "HH:mm" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: bad time %q", ErrMalformedSchedule, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: bad hour in %q", ErrMalformedSchedule, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: bad minute in %q", ErrMalformedSchedule, s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as "HH:mm".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func parseInterval(ci models.ClockInterval) (models.Interval, error) {
	start, err := ParseClock(ci.Start)
	if err != nil {
		return models.Interval{}, err
	}
	end, err := ParseClock(ci.End)
	if err != nil {
		return models.Interval{}, err
	}
	if start >= end {
		return models.Interval{}, fmt.Errorf("%w: interval %s-%s has no width", ErrMalformedSchedule, ci.Start, ci.End)
	}
	return models.Interval{Start: start, End: end}, nil
}

// WorkingIntervals is the single accessor behind which all schedule-shape
// I/O is isolated. It converts one weekday's DaySchedule into ordered
// minute intervals with the break already excised. A non-working day yields
// an empty slice; malformed times yield ErrMalformedSchedule.
func WorkingIntervals(day models.DaySchedule) ([]models.Interval, error) {
	if !day.IsWorking {
		return nil, nil
	}

	var brk *models.Interval
	if day.Break != nil {
		parsed, err := parseInterval(*day.Break)
		if err != nil {
			return nil, err
		}
		brk = &parsed
	}

	var out []models.Interval
	for _, ci := range day.Intervals {
		work, err := parseInterval(ci)
		if err != nil {
			return nil, err
		}
		out = append(out, SplitBreak(work, brk)...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

// ScheduleDay looks up the weekday entry for a staff availability record.
// A missing entry behaves like a non-working day.
func ScheduleDay(av *models.StaffAvailability, weekday string) models.DaySchedule {
	if av == nil || av.Schedule == nil {
		return models.DaySchedule{}
	}
	return av.Schedule[strings.ToLower(weekday)]
}

// ValidateSchedule checks a full weekly schedule, returning
// ErrMalformedSchedule on the first bad entry. Used by the staff service
// before persisting.
func ValidateSchedule(schedule map[string]models.DaySchedule) error {
	for day, ds := range schedule {
		if !knownWeekday(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrMalformedSchedule, day)
		}
		if _, err := WorkingIntervals(ds); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}

func knownWeekday(s string) bool {
	switch strings.ToLower(s) {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}
