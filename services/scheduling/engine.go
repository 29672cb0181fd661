package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	appointmentRepo "koobings/database/repository/appointment"
	businessRepo "koobings/database/repository/business"
	serviceRepo "koobings/database/repository/service"
	staffRepo "koobings/database/repository/staff"
	"koobings/models"
	"koobings/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultAvailabilityEngine composes repository reads with the pure slot
// pipeline: working intervals (break excised) -> candidate generation ->
// conflict and past-time annotation.
type DefaultAvailabilityEngine struct {
	BusinessRepo businessRepo.BusinessRepository
	StaffRepo    staffRepo.StaffRepository
	ServiceRepo  serviceRepo.ServiceRepository
	ApptRepo     appointmentRepo.AppointmentRepository

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (e *DefaultAvailabilityEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *DefaultAvailabilityEngine) GetDaySlots(ctx context.Context, businessID, staffID, serviceID, date string, durationOverride int) (*models.DayAvailability, error) {
	biz, err := e.BusinessRepo.GetByID(ctx, businessID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to load business: %w", err)
	}
	return e.daySlots(ctx, biz, staffID, serviceID, date, durationOverride)
}

func (e *DefaultAvailabilityEngine) daySlots(ctx context.Context, biz *models.Business, staffID, serviceID, date string, durationOverride int) (*models.DayAvailability, error) {
	svc, err := e.ServiceRepo.GetByID(ctx, biz.ID, serviceID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}

	if _, err := e.StaffRepo.GetByID(ctx, biz.ID, staffID); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	if !svc.AllowsStaff(staffID) {
		return nil, ErrStaffNotAllowed
	}

	duration := svc.Duration
	if durationOverride > 0 {
		duration = durationOverride
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration %d", ErrMalformedSchedule, duration)
	}

	loc := businessLocation(biz)
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrMalformedSchedule, date)
	}

	result := &models.DayAvailability{
		Date:      date,
		StaffID:   staffID,
		ServiceID: serviceID,
		Duration:  duration,
		Slots:     []models.SlotStatus{},
		Available: []string{},
	}

	av, err := e.StaffRepo.GetAvailability(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if av == nil {
		return result, nil // no availability record: no slots, not an error
	}

	intervals, err := WorkingIntervals(ScheduleDay(av, strings.ToLower(day.Weekday().String())))
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return result, nil
	}

	step := biz.Settings.SlotStepMinutes
	if step <= 0 {
		step = DefaultStepMinutes
	}
	candidates := GenerateSlots(intervals, duration, step)
	if len(candidates) == 0 {
		return result, nil
	}

	busy, err := e.busyIntervals(ctx, staffID, day, loc)
	if err != nil {
		return nil, err
	}

	nowMin := -1
	now := e.now().In(loc)
	if now.Format("2006-01-02") == date {
		nowMin = now.Hour()*60 + now.Minute()
	}

	result.Slots = AnnotateConflicts(candidates, duration, busy, nowMin)
	result.Available = AvailableTimes(result.Slots)
	return result, nil
}

// busyIntervals collects everything that occupies the staff member's day:
// blocking appointments plus ad-hoc unavailability periods, both clamped to
// the day and expressed as minutes from midnight.
func (e *DefaultAvailabilityEngine) busyIntervals(ctx context.Context, staffID string, day time.Time, loc *time.Location) ([]models.Interval, error) {
	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)

	appts, err := e.ApptRepo.ListBlockingByStaffAndRange(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	busy := make([]models.Interval, 0, len(appts))
	for _, a := range appts {
		iv, ok := clampToDay(a.ScheduledFor, a.End(), dayStart, dayEnd, loc)
		if ok {
			busy = append(busy, iv)
		}
	}

	periods, err := e.StaffRepo.ListUnavailability(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load unavailability: %w", err)
	}
	for _, p := range periods {
		iv, ok := clampToDay(p.Start, p.End, dayStart, dayEnd, loc)
		if ok {
			busy = append(busy, iv)
		}
	}
	return busy, nil
}

func clampToDay(start, end, dayStart, dayEnd time.Time, loc *time.Location) (models.Interval, bool) {
	if !start.Before(dayEnd) || !end.After(dayStart) {
		return models.Interval{}, false
	}
	s := 0
	if start.After(dayStart) {
		t := start.In(loc)
		s = t.Hour()*60 + t.Minute()
	}
	en := 24 * 60
	if end.Before(dayEnd) {
		t := end.In(loc)
		en = t.Hour()*60 + t.Minute()
	}
	if s >= en {
		return models.Interval{}, false
	}
	return models.Interval{Start: s, End: en}, true
}

func (e *DefaultAvailabilityEngine) GetWeekSlots(ctx context.Context, businessID, staffID, serviceID string, weekIndex int) (*models.WeekAvailability, error) {
	logger := utils.GetLogger()

	biz, err := e.BusinessRepo.GetByID(ctx, businessID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to load business: %w", err)
	}

	loc := businessLocation(biz)
	now := e.now().In(loc)
	weekZero := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	weekStart := weekZero.AddDate(0, 0, weekIndex*7)

	week := &models.WeekAvailability{
		WeekStart: weekStart.Format("2006-01-02"),
	}
	for d := 0; d < 7; d++ {
		dateStr := weekStart.AddDate(0, 0, d).Format("2006-01-02")
		dayAvail, err := e.daySlots(ctx, biz, staffID, serviceID, dateStr, 0)
		if err != nil {
			logger.Error("error computing day availability",
				zap.String("date", dateStr), zap.Error(err))
			return nil, err
		}
		week.Days = append(week.Days, *dayAvail)
	}
	return week, nil
}

func businessLocation(biz *models.Business) *time.Location {
	if biz.Settings.Timezone != "" {
		if loc, err := time.LoadLocation(biz.Settings.Timezone); err == nil {
			return loc
		}
	}
	return time.Local
}
