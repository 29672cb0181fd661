package booking

import (
	"context"
	"testing"
	"time"

	appointmentRepo "koobings/database/repository/appointment"
	"koobings/models"
	"koobings/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mock collaborators for testing

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
func (m *mockServiceRepo) Update(ctx context.Context, s *models.Service) error     { return nil }
func (m *mockServiceRepo) Delete(ctx context.Context, businessID, id string) error { return nil }

type mockApptRepo struct {
	appointments map[string]*models.Appointment
}

func newMockApptRepo() *mockApptRepo {
	return &mockApptRepo{appointments: make(map[string]*models.Appointment)}
}

func (m *mockApptRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	proposed := models.Interval{Start: 0, End: appt.Duration}
	for _, existing := range m.appointments {
		if existing.StaffID != appt.StaffID || !existing.IsBlocking() {
			continue
		}
		offset := int(existing.ScheduledFor.Sub(appt.ScheduledFor).Minutes())
		other := models.Interval{Start: offset, End: offset + existing.Duration}
		if proposed.Overlaps(other) {
			return appointmentRepo.ErrSlotTaken
		}
	}
	m.appointments[appt.ID] = appt
	return nil
}

func (m *mockApptRepo) GetByID(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	appt, ok := m.appointments[id]
	if !ok || appt.BusinessID != businessID {
		return nil, mongo.ErrNoDocuments
	}
	cp := *appt
	return &cp, nil
}

func (m *mockApptRepo) ListBlockingByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (m *mockApptRepo) ListByBusinessAndRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (m *mockApptRepo) ListByClient(ctx context.Context, businessID, clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appointments {
		if a.BusinessID == businessID && a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockApptRepo) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	appt, ok := m.appointments[id]
	if !ok || appt.BusinessID != businessID {
		return mongo.ErrNoDocuments
	}
	appt.Status = status
	return nil
}

type mockClientService struct {
	client *models.Client
}

func (m *mockClientService) Create(ctx context.Context, c *models.Client) (*models.Client, error) {
	return c, nil
}
func (m *mockClientService) GetByID(ctx context.Context, businessID, id string) (*models.Client, error) {
	if m.client == nil || m.client.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return m.client, nil
}
func (m *mockClientService) FindOrCreate(ctx context.Context, businessID, name, email, phone string) (*models.Client, error) {
	return m.client, nil
}
func (m *mockClientService) ListByBusiness(ctx context.Context, businessID string) ([]models.Client, error) {
	return nil, nil
}
func (m *mockClientService) Update(ctx context.Context, c *models.Client) (*models.Client, error) {
	return c, nil
}
func (m *mockClientService) Delete(ctx context.Context, businessID, id string) error { return nil }

type mockEngine struct {
	available    []string
	lastOverride int
}

func (m *mockEngine) GetDaySlots(ctx context.Context, businessID, staffID, serviceID, date string, durationOverride int) (*models.DayAvailability, error) {
	m.lastOverride = durationOverride
	slots := make([]models.SlotStatus, 0, len(m.available))
	for _, t := range m.available {
		slots = append(slots, models.SlotStatus{Time: t, Available: true})
	}
	return &models.DayAvailability{
		Date:      date,
		StaffID:   staffID,
		ServiceID: serviceID,
		Slots:     slots,
		Available: m.available,
	}, nil
}

func (m *mockEngine) GetWeekSlots(ctx context.Context, businessID, staffID, serviceID string, weekIndex int) (*models.WeekAvailability, error) {
	return &models.WeekAvailability{}, nil
}

func newTestService(available []string) (*DefaultBookingService, *mockApptRepo, *mockEngine) {
	apptRepo := newMockApptRepo()
	engine := &mockEngine{available: available}
	svc := &DefaultBookingService{
		BusinessRepo: &mockBusinessRepo{business: &models.Business{
			ID:   "biz-1",
			Name: "Corte & Cor",
			Settings: models.BusinessSettings{
				Timezone: "UTC",
			},
		}},
		ServiceRepo: &mockServiceRepo{service: &models.Service{
			ID:         "svc-1",
			BusinessID: "biz-1",
			Name:       "Haircut",
			Duration:   60,
			Active:     true,
		}},
		ApptRepo:  apptRepo,
		Engine:    engine,
		ClientSvc: &mockClientService{client: &models.Client{ID: "cli-1", BusinessID: "biz-1", Name: "Ana"}},
	}
	return svc, apptRepo, engine
}

func TestBookConfirmedAppointment(t *testing.T) {
	svc, apptRepo, _ := newTestService([]string{"09:00", "10:00", "11:00"})

	appt, err := svc.Book(context.Background(), "biz-1", "cli-1", "staff-1", "svc-1",
		models.BookingRequestInput{Date: "2026-09-07", Time: "10:00"})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentConfirmed, appt.Status)
	assert.Equal(t, 60, appt.Duration)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), appt.ScheduledFor.UTC())

	stored, err := apptRepo.GetByID(context.Background(), "biz-1", appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, stored.Status)
}

func TestBookRejectsTimeOutsideAvailability(t *testing.T) {
	svc, _, _ := newTestService([]string{"09:00", "10:00"})

	_, err := svc.Book(context.Background(), "biz-1", "cli-1", "staff-1", "svc-1",
		models.BookingRequestInput{Date: "2026-09-07", Time: "10:30"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBookDurationOverride(t *testing.T) {
	svc, _, engine := newTestService([]string{"09:00"})

	appt, err := svc.Book(context.Background(), "biz-1", "cli-1", "staff-1", "svc-1",
		models.BookingRequestInput{Date: "2026-09-07", Time: "09:00", Duration: 90})
	require.NoError(t, err)

	assert.Equal(t, 90, appt.Duration)
	assert.Equal(t, 90, engine.lastOverride)
}

func TestBookLosesRaceToExistingAppointment(t *testing.T) {
	svc, apptRepo, _ := newTestService([]string{"10:00"})

	// An overlapping blocking appointment already sits in storage even though
	// the availability answer has not caught up yet.
	apptRepo.appointments["other"] = &models.Appointment{
		ID:           "other",
		BusinessID:   "biz-1",
		StaffID:      "staff-1",
		ScheduledFor: time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC),
		Duration:     60,
		Status:       models.AppointmentPending,
	}

	_, err := svc.Book(context.Background(), "biz-1", "cli-1", "staff-1", "svc-1",
		models.BookingRequestInput{Date: "2026-09-07", Time: "10:00"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBookUnknownClient(t *testing.T) {
	svc, _, _ := newTestService([]string{"10:00"})

	_, err := svc.Book(context.Background(), "biz-1", "cli-unknown", "staff-1", "svc-1",
		models.BookingRequestInput{Date: "2026-09-07", Time: "10:00"})
	assert.Error(t, err)
}

func seedAppointment(repo *mockApptRepo, status string) *models.Appointment {
	appt := &models.Appointment{
		ID:           "appt-1",
		BusinessID:   "biz-1",
		ClientID:     "cli-1",
		StaffID:      "staff-1",
		ServiceID:    "svc-1",
		ScheduledFor: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		Duration:     60,
		Status:       status,
	}
	repo.appointments[appt.ID] = appt
	return appt
}

func TestAcceptPendingAppointment(t *testing.T) {
	svc, apptRepo, _ := newTestService(nil)
	seedAppointment(apptRepo, models.AppointmentPending)

	appt, err := svc.Accept(context.Background(), "biz-1", "appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, appt.Status)
}

func TestAcceptConfirmedAppointmentFails(t *testing.T) {
	svc, apptRepo, _ := newTestService(nil)
	seedAppointment(apptRepo, models.AppointmentConfirmed)

	_, err := svc.Accept(context.Background(), "biz-1", "appt-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRejectPendingAppointment(t *testing.T) {
	svc, apptRepo, _ := newTestService(nil)
	seedAppointment(apptRepo, models.AppointmentPending)

	appt, err := svc.Reject(context.Background(), "biz-1", "appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentRejected, appt.Status)
}

func TestCancelFromPendingAndConfirmed(t *testing.T) {
	for _, status := range []string{models.AppointmentPending, models.AppointmentConfirmed} {
		svc, apptRepo, _ := newTestService(nil)
		seedAppointment(apptRepo, status)

		appt, err := svc.Cancel(context.Background(), "biz-1", "appt-1")
		require.NoError(t, err, "cancel from %s", status)
		assert.Equal(t, models.AppointmentCancelled, appt.Status)
	}
}

func TestCancelCompletedAppointmentFails(t *testing.T) {
	svc, apptRepo, _ := newTestService(nil)
	seedAppointment(apptRepo, models.AppointmentCompleted)

	_, err := svc.Cancel(context.Background(), "biz-1", "appt-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	svc, apptRepo, _ := newTestService(nil)
	seedAppointment(apptRepo, models.AppointmentPending)

	_, err := svc.Complete(context.Background(), "biz-1", "appt-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNoShowFromConfirmed(t *testing.T) {
	svc, apptRepo, _ := newTestService(nil)
	seedAppointment(apptRepo, models.AppointmentConfirmed)

	appt, err := svc.MarkNoShow(context.Background(), "biz-1", "appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentNoShow, appt.Status)
}

// Legacy records may still carry ACCEPTED; the lifecycle treats it as
// CONFIRMED.
func TestLegacyAcceptedStatusBehavesAsConfirmed(t *testing.T) {
	svc, apptRepo, _ := newTestService(nil)
	seedAppointment(apptRepo, models.AppointmentAccepted)

	appt, err := svc.Complete(context.Background(), "biz-1", "appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, appt.Status)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.GetByID(context.Background(), "biz-1", "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestMalformedDateRejected(t *testing.T) {
	svc, _, _ := newTestService([]string{"10:00"})

	_, err := svc.Book(context.Background(), "biz-1", "cli-1", "staff-1", "svc-1",
		models.BookingRequestInput{Date: "07-09-2026", Time: "10:00"})
	assert.ErrorIs(t, err, scheduling.ErrMalformedSchedule)
}
