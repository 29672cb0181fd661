package scheduling

import "koobings/models"

// DefaultStepMinutes is the platform-wide candidate step when a business
// has not configured its own.
const DefaultStepMinutes = 30

// SplitBreak excises a break from one working interval, producing zero, one
// or two sub-intervals. A slot ending exactly at the break start, or
// starting exactly at the break end, survives; degenerate breaks (outside
// or covering the working hours) collapse through the same comparisons.
func SplitBreak(work models.Interval, brk *models.Interval) []models.Interval {
	if brk == nil {
		return []models.Interval{work}
	}
	var out []models.Interval
	if first := min(brk.Start, work.End); work.Start < first {
		out = append(out, models.Interval{Start: work.Start, End: first})
	}
	if second := max(brk.End, work.Start); second < work.End {
		out = append(out, models.Interval{Start: second, End: work.End})
	}
	return out
}

// GenerateSlots enumerates candidate start times (minutes from midnight) at
// the given step within each interval. A candidate is kept while
// candidate+duration <= interval end, so a slot ending exactly on the
// boundary is included. Intervals are assumed ordered and disjoint; output
// is chronological with no duplicates.
func GenerateSlots(intervals []models.Interval, durationMin, stepMin int) []int {
	if durationMin <= 0 || stepMin <= 0 {
		return nil
	}
	var out []int
	for _, iv := range intervals {
		for start := iv.Start; start+durationMin <= iv.End; start += stepMin {
			out = append(out, start)
		}
	}
	return out
}

// AnnotateConflicts marks each candidate against the busy intervals using
// the shared half-open overlap predicate, and additionally marks candidates
// at or before nowMin as unavailable when nowMin >= 0 (pass -1 for dates
// other than today).
func AnnotateConflicts(candidates []int, durationMin int, busy []models.Interval, nowMin int) []models.SlotStatus {
	out := make([]models.SlotStatus, 0, len(candidates))
	for _, start := range candidates {
		slot := models.Interval{Start: start, End: start + durationMin}
		available := true
		if nowMin >= 0 && start <= nowMin {
			available = false
		}
		if available {
			for _, b := range busy {
				if slot.Overlaps(b) {
					available = false
					break
				}
			}
		}
		out = append(out, models.SlotStatus{Time: FormatClock(start), Available: available})
	}
	return out
}

// AvailableTimes reduces an annotated slot list to the bookable "HH:mm"
// starts only.
func AvailableTimes(slots []models.SlotStatus) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}
