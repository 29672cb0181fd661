package scheduling

import (
	"context"
	"testing"
	"time"

	"koobings/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mock repositories for testing

type mockBusinessRepo struct {
	business *models.Business
}

func (m *mockBusinessRepo) Create(ctx context.Context, b *models.Business) error { return nil }
func (m *mockBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	if m.business == nil || m.business.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return m.business, nil
}
func (m *mockBusinessRepo) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	return nil, mongo.ErrNoDocuments
}
func (m *mockBusinessRepo) GetByEmail(ctx context.Context, email string) (*models.Business, error) {
	return nil, mongo.ErrNoDocuments
}
func (m *mockBusinessRepo) UpdateSettings(ctx context.Context, id string, s models.BusinessSettings) error {
	return nil
}
func (m *mockBusinessRepo) Delete(ctx context.Context, id string) error { return nil }

type mockStaffRepo struct {
	staff          *models.Staff
	availability   *models.StaffAvailability
	unavailability []models.StaffUnavailability
}

func (m *mockStaffRepo) Create(ctx context.Context, s *models.Staff) error { return nil }
func (m *mockStaffRepo) GetByID(ctx context.Context, businessID, id string) (*models.Staff, error) {
	if m.staff == nil || m.staff.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return m.staff, nil
}
func (m *mockStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	return nil, mongo.ErrNoDocuments
}
func (m *mockStaffRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Staff, error) {
	return nil, nil
}
func (m *mockStaffRepo) Update(ctx context.Context, s *models.Staff) error       { return nil }
func (m *mockStaffRepo) Delete(ctx context.Context, businessID, id string) error { return nil }
func (m *mockStaffRepo) GetAvailability(ctx context.Context, staffID string) (*models.StaffAvailability, error) {
	return m.availability, nil
}
func (m *mockStaffRepo) SetAvailability(ctx context.Context, av *models.StaffAvailability) error {
	return nil
}
func (m *mockStaffRepo) AddUnavailability(ctx context.Context, u *models.StaffUnavailability) error {
	return nil
}
func (m *mockStaffRepo) ListUnavailability(ctx context.Context, staffID string, from, to time.Time) ([]models.StaffUnavailability, error) {
	var out []models.StaffUnavailability
	for _, u := range m.unavailability {
		if u.Start.Before(to) && u.End.After(from) {
			out = append(out, u)
		}
	}
	return out, nil
}
func (m *mockStaffRepo) RemoveUnavailability(ctx context.Context, staffID, id string) error {
	return nil
}

type mockServiceRepo struct {
	service *models.Service
}

func (m *mockServiceRepo) Create(ctx context.Context, s *models.Service) error { return nil }
func (m *mockServiceRepo) GetByID(ctx context.Context, businessID, id string) (*models.Service, error) {
	if m.service == nil || m.service.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return m.service, nil
}
func (m *mockServiceRepo) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Service, error) {
	return nil, nil
}
func (m *mockServiceRepo) Update(ctx context.Context, s *models.Service) error       { return nil }
func (m *mockServiceRepo) Delete(ctx context.Context, businessID, id string) error   { return nil }

type mockApptRepo struct {
	appointments []models.Appointment
}

func (m *mockApptRepo) CreateIfFree(ctx context.Context, a *models.Appointment) error { return nil }
func (m *mockApptRepo) GetByID(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	return nil, mongo.ErrNoDocuments
}
func (m *mockApptRepo) ListBlockingByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appointments {
		if a.IsBlocking() && a.ScheduledFor.Before(to) && a.End().After(from) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m *mockApptRepo) ListByBusinessAndRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (m *mockApptRepo) ListByClient(ctx context.Context, businessID, clientID string) ([]models.Appointment, error) {
	return nil, nil
}
func (m *mockApptRepo) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	return nil
}

// 2026-09-07 is a Monday.
const testMonday = "2026-09-07"

func newTestEngine() (*DefaultAvailabilityEngine, *mockStaffRepo, *mockApptRepo) {
	staffRepo := &mockStaffRepo{
		staff: &models.Staff{ID: "staff-1", BusinessID: "biz-1", Name: "Ana"},
		availability: &models.StaffAvailability{
			StaffID: "staff-1",
			Schedule: map[string]models.DaySchedule{
				"monday": {
					IsWorking: true,
					Intervals: []models.ClockInterval{{Start: "09:00", End: "17:00"}},
					Break:     &models.ClockInterval{Start: "12:00", End: "13:00"},
				},
			},
		},
	}
	apptRepo := &mockApptRepo{}
	engine := &DefaultAvailabilityEngine{
		BusinessRepo: &mockBusinessRepo{business: &models.Business{
			ID:       "biz-1",
			Settings: models.BusinessSettings{SlotStepMinutes: 60},
		}},
		StaffRepo:   staffRepo,
		ServiceRepo: &mockServiceRepo{service: &models.Service{ID: "svc-1", Duration: 60}},
		ApptRepo:    apptRepo,
		Now: func() time.Time {
			return time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
		},
	}
	return engine, staffRepo, apptRepo
}

func mondayAt(hh, mm int) time.Time {
	return time.Date(2026, 9, 7, hh, mm, 0, 0, time.Local)
}

func TestGetDaySlots_EndToEnd(t *testing.T) {
	engine, _, apptRepo := newTestEngine()
	apptRepo.appointments = []models.Appointment{{
		ID: "a1", StaffID: "staff-1",
		ScheduledFor: mondayAt(14, 0),
		Duration:     60,
		Status:       models.AppointmentConfirmed,
	}}

	got, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "11:00", "13:00", "15:00", "16:00"}, got.Available)
	assert.Len(t, got.Slots, 7) // 14:00 annotated unavailable, not dropped
	for _, s := range got.Slots {
		if s.Time == "14:00" {
			assert.False(t, s.Available)
		}
	}
}

func TestGetDaySlots_PendingBlocksToo(t *testing.T) {
	engine, _, apptRepo := newTestEngine()
	apptRepo.appointments = []models.Appointment{{
		ID: "a1", StaffID: "staff-1",
		ScheduledFor: mondayAt(9, 0),
		Duration:     60,
		Status:       models.AppointmentPending,
	}}

	got, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	require.NoError(t, err)
	assert.NotContains(t, got.Available, "09:00")
}

func TestGetDaySlots_CancelledDoesNotBlock(t *testing.T) {
	engine, _, apptRepo := newTestEngine()
	apptRepo.appointments = []models.Appointment{{
		ID: "a1", StaffID: "staff-1",
		ScheduledFor: mondayAt(9, 0),
		Duration:     60,
		Status:       models.AppointmentCancelled,
	}}

	got, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	require.NoError(t, err)
	assert.Contains(t, got.Available, "09:00")
}

func TestGetDaySlots_OvernightAppointmentBlocksMorning(t *testing.T) {
	engine, staffRepo, apptRepo := newTestEngine()
	staffRepo.availability.Schedule["monday"] = models.DaySchedule{
		IsWorking: true,
		Intervals: []models.ClockInterval{{Start: "00:00", End: "02:00"}},
	}
	// Starts Sunday night and runs past midnight into the queried Monday.
	apptRepo.appointments = []models.Appointment{{
		ID: "a1", StaffID: "staff-1",
		ScheduledFor: time.Date(2026, 9, 6, 23, 30, 0, 0, time.Local),
		Duration:     60,
		Status:       models.AppointmentConfirmed,
	}}

	got, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	require.NoError(t, err)
	assert.NotContains(t, got.Available, "00:00")
	assert.Contains(t, got.Available, "01:00")
}

func TestGetDaySlots_NoAvailabilityRecord(t *testing.T) {
	engine, staffRepo, _ := newTestEngine()
	staffRepo.availability = nil

	got, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	require.NoError(t, err)
	assert.Empty(t, got.Slots)
	assert.Empty(t, got.Available)
}

func TestGetDaySlots_NonWorkingDay(t *testing.T) {
	engine, _, _ := newTestEngine()

	// 2026-09-08 is a Tuesday, absent from the schedule.
	got, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", "2026-09-08", 0)
	require.NoError(t, err)
	assert.Empty(t, got.Available)
}

func TestGetDaySlots_NotFoundConditions(t *testing.T) {
	engine, _, _ := newTestEngine()

	_, err := engine.GetDaySlots(context.Background(), "nope", "staff-1", "svc-1", testMonday, 0)
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = engine.GetDaySlots(context.Background(), "biz-1", "nope", "svc-1", testMonday, 0)
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "nope", testMonday, 0)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetDaySlots_StaffNotAllowed(t *testing.T) {
	engine, _, _ := newTestEngine()
	engine.ServiceRepo = &mockServiceRepo{service: &models.Service{
		ID: "svc-1", Duration: 60, StaffIDs: []string{"someone-else"},
	}}

	_, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	assert.ErrorIs(t, err, ErrStaffNotAllowed)
}

func TestGetDaySlots_TodayFilter(t *testing.T) {
	engine, _, _ := newTestEngine()
	engine.Now = func() time.Time { return mondayAt(10, 30) }

	got, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	require.NoError(t, err)

	// Candidates at or before 10:30 are gone; the rest of the day remains.
	assert.Equal(t, []string{"11:00", "13:00", "14:00", "15:00", "16:00"}, got.Available)
}

func TestGetDaySlots_UnavailabilityBlocks(t *testing.T) {
	engine, staffRepo, _ := newTestEngine()
	staffRepo.unavailability = []models.StaffUnavailability{{
		ID: "u1", StaffID: "staff-1",
		Start: mondayAt(9, 0),
		End:   mondayAt(12, 0),
	}}

	got, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"13:00", "14:00", "15:00", "16:00"}, got.Available)
}

func TestGetDaySlots_DurationOverride(t *testing.T) {
	engine, _, _ := newTestEngine()

	got, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 180)
	require.NoError(t, err)
	assert.Equal(t, 180, got.Duration)
	// Morning block is 09:00-12:00: only 09:00 fits a 3-hour service.
	assert.Contains(t, got.Available, "09:00")
	assert.NotContains(t, got.Available, "10:00")
}

func TestGetDaySlots_MalformedInputs(t *testing.T) {
	engine, staffRepo, _ := newTestEngine()

	_, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", "07/09/2026", 0)
	assert.ErrorIs(t, err, ErrMalformedSchedule)

	staffRepo.availability.Schedule["monday"] = models.DaySchedule{
		IsWorking: true,
		Intervals: []models.ClockInterval{{Start: "17:00", End: "09:00"}},
	}
	_, err = engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	assert.ErrorIs(t, err, ErrMalformedSchedule)
}

func TestGetDaySlots_Idempotent(t *testing.T) {
	engine, _, apptRepo := newTestEngine()
	apptRepo.appointments = []models.Appointment{{
		ID: "a1", StaffID: "staff-1",
		ScheduledFor: mondayAt(14, 0),
		Duration:     60,
		Status:       models.AppointmentConfirmed,
	}}

	first, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	require.NoError(t, err)
	second, err := engine.GetDaySlots(context.Background(), "biz-1", "staff-1", "svc-1", testMonday, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetWeekSlots(t *testing.T) {
	engine, _, _ := newTestEngine()

	week, err := engine.GetWeekSlots(context.Background(), "biz-1", "staff-1", "svc-1", 1)
	require.NoError(t, err)
	require.Len(t, week.Days, 7)

	// Week 1 starting from Tuesday 2026-09-01 covers 09-08..09-14; only the
	// Monday (09-14) is a working day.
	assert.Equal(t, "2026-09-08", week.WeekStart)
	var withSlots int
	for _, d := range week.Days {
		if len(d.Available) > 0 {
			withSlots++
			assert.Equal(t, "2026-09-14", d.Date)
		}
	}
	assert.Equal(t, 1, withSlots)
}
