package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "koobings/database/repository/appointment"
	"koobings/models"
	"koobings/services/scheduling"
	"koobings/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ConfirmSession turns a session into a PENDING appointment. The requested
// start is validated against a fresh availability computation before the
// transactional insert, which still decides the race against concurrent
// bookings.
func (s *DefaultBookingService) ConfirmSession(ctx context.Context, sessionID string, input models.BookingRequestInput) (*models.Appointment, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if input.StaffID == "" {
		input.StaffID = session.StaffID
	}
	if input.Date == "" {
		input.Date = session.Date
	}
	if input.ClientName == "" {
		input.ClientName = session.ClientName
	}
	if input.ClientEmail == "" {
		input.ClientEmail = session.ClientEmail
	}
	if input.ClientPhone == "" {
		input.ClientPhone = session.ClientPhone
	}

	cli, err := s.ClientSvc.FindOrCreate(ctx, session.BusinessID, input.ClientName, input.ClientEmail, input.ClientPhone)
	if err != nil {
		return nil, err
	}

	appt, err := s.create(ctx, session.BusinessID, cli.ID, input.StaffID, session.ServiceID, input, models.AppointmentPending)
	if err != nil {
		return nil, err
	}

	// The session has served its purpose.
	if err := s.CancelSession(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("Failed to drop confirmed booking session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return appt, nil
}

// Book creates an appointment directly from the dashboard. Staff-made
// bookings skip the approval step and start out CONFIRMED.
func (s *DefaultBookingService) Book(ctx context.Context, businessID, clientID, staffID, serviceID string, input models.BookingRequestInput) (*models.Appointment, error) {
	if _, err := s.ClientSvc.GetByID(ctx, businessID, clientID); err != nil {
		return nil, err
	}
	appt, err := s.create(ctx, businessID, clientID, staffID, serviceID, input, models.AppointmentConfirmed)
	if err != nil {
		return nil, err
	}
	s.afterConfirm(ctx, appt)
	return appt, nil
}

func (s *DefaultBookingService) create(ctx context.Context, businessID, clientID, staffID, serviceID string, input models.BookingRequestInput, status string) (*models.Appointment, error) {
	biz, err := s.BusinessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("business not found: %w", err)
	}
	svc, err := s.ServiceRepo.GetByID(ctx, businessID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}

	duration := svc.Duration
	if input.Duration > 0 {
		duration = input.Duration
	}

	avail, err := s.Engine.GetDaySlots(ctx, businessID, staffID, serviceID, input.Date, input.Duration)
	if err != nil {
		return nil, err
	}
	if !contains(avail.Available, input.Time) {
		return nil, ErrSlotUnavailable
	}

	startMin, err := scheduling.ParseClock(input.Time)
	if err != nil {
		return nil, err
	}
	loc := location(biz)
	day, err := time.ParseInLocation("2006-01-02", input.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", scheduling.ErrMalformedSchedule, input.Date)
	}
	scheduledFor := day.Add(time.Duration(startMin) * time.Minute)

	now := time.Now()
	appt := &models.Appointment{
		ID:           uuid.New().String(),
		BusinessID:   businessID,
		ClientID:     clientID,
		StaffID:      staffID,
		ServiceID:    serviceID,
		ScheduledFor: scheduledFor,
		Duration:     duration,
		Status:       normalizeStatus(status),
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.ApptRepo.CreateIfFree(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appt, nil
}

// Accept moves a pending appointment to CONFIRMED, emails the client and
// schedules the reminder.
func (s *DefaultBookingService) Accept(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	appt, err := s.transition(ctx, businessID, id, models.AppointmentConfirmed, models.AppointmentPending)
	if err != nil {
		return nil, err
	}
	s.afterConfirm(ctx, appt)
	return appt, nil
}

func (s *DefaultBookingService) Reject(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	return s.transition(ctx, businessID, id, models.AppointmentRejected, models.AppointmentPending)
}

func (s *DefaultBookingService) Cancel(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	appt, err := s.transition(ctx, businessID, id, models.AppointmentCancelled,
		models.AppointmentPending, models.AppointmentConfirmed)
	if err != nil {
		return nil, err
	}
	s.notifyCancelled(ctx, appt)
	return appt, nil
}

func (s *DefaultBookingService) Complete(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	return s.transition(ctx, businessID, id, models.AppointmentCompleted, models.AppointmentConfirmed)
}

func (s *DefaultBookingService) MarkNoShow(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	return s.transition(ctx, businessID, id, models.AppointmentNoShow, models.AppointmentConfirmed)
}

func (s *DefaultBookingService) GetByID(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	return appt, nil
}

func (s *DefaultBookingService) ListByRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error) {
	return s.ApptRepo.ListByBusinessAndRange(ctx, businessID, from, to)
}

func (s *DefaultBookingService) ListByClient(ctx context.Context, businessID, clientID string) ([]models.Appointment, error) {
	return s.ApptRepo.ListByClient(ctx, businessID, clientID)
}

// transition loads the appointment, checks the current status is one of the
// allowed sources, and persists the new status.
func (s *DefaultBookingService) transition(ctx context.Context, businessID, id, to string, from ...string) (*models.Appointment, error) {
	appt, err := s.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	current := normalizeStatus(appt.Status)
	if !contains(from, current) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, to)
	}
	if err := s.ApptRepo.UpdateStatus(ctx, businessID, id, to); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	appt.Status = to
	appt.UpdatedAt = time.Now()
	return appt, nil
}

// afterConfirm sends the confirmation email and enqueues the reminder task.
// Both are best effort; the booking itself is already committed.
func (s *DefaultBookingService) afterConfirm(ctx context.Context, appt *models.Appointment) {
	logger := utils.GetLogger()

	biz, err := s.BusinessRepo.GetByID(ctx, appt.BusinessID)
	if err != nil {
		logger.Error("Failed to load business for booking notifications",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	cli, err := s.ClientSvc.GetByID(ctx, appt.BusinessID, appt.ClientID)
	if err != nil {
		logger.Error("Failed to load client for booking notifications",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	svc, err := s.ServiceRepo.GetByID(ctx, appt.BusinessID, appt.ServiceID)
	if err != nil {
		logger.Error("Failed to load service for booking notifications",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}

	if s.NotifSvc != nil {
		if err := s.NotifSvc.SendBookingConfirmed(appt, cli, svc.Name, biz.Name); err != nil {
			logger.Error("Failed to send booking confirmation",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	s.enqueueReminder(ctx, appt, biz, cli, svc.Name)
}

func (s *DefaultBookingService) notifyCancelled(ctx context.Context, appt *models.Appointment) {
	if s.NotifSvc == nil {
		return
	}
	logger := utils.GetLogger()

	biz, err := s.BusinessRepo.GetByID(ctx, appt.BusinessID)
	if err != nil {
		logger.Error("Failed to load business for cancellation email",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	cli, err := s.ClientSvc.GetByID(ctx, appt.BusinessID, appt.ClientID)
	if err != nil {
		logger.Error("Failed to load client for cancellation email",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	svc, err := s.ServiceRepo.GetByID(ctx, appt.BusinessID, appt.ServiceID)
	if err != nil {
		logger.Error("Failed to load service for cancellation email",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	if err := s.NotifSvc.SendBookingCancelled(appt, cli, svc.Name, biz.Name); err != nil {
		logger.Error("Failed to send cancellation email",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func location(biz *models.Business) *time.Location {
	if biz.Settings.Timezone != "" {
		if loc, err := time.LoadLocation(biz.Settings.Timezone); err == nil {
			return loc
		}
	}
	return time.Local
}

// normalizeStatus folds the legacy ACCEPTED alias into CONFIRMED so that
// stored documents only carry the canonical set.
func normalizeStatus(status string) string {
	if status == models.AppointmentAccepted {
		return models.AppointmentConfirmed
	}
	return status
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
