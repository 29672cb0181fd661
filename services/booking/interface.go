// Package booking drives the public-portal booking flow and the appointment
// lifecycle.
package booking

import (
	"context"
	"time"

	appointmentRepo "koobings/database/repository/appointment"
	businessRepo "koobings/database/repository/business"
	serviceRepo "koobings/database/repository/service"
	staffRepo "koobings/database/repository/staff"
	"koobings/models"
	"koobings/services/client"
	"koobings/services/notification"
	"koobings/services/scheduling"

	"github.com/hibiken/asynq"
)

type BookingService interface {
	// Session flow for the public portal. Sessions live in Redis and expire
	// on their own; CancelSession just drops one early.
	InitiateSession(ctx context.Context, businessID, serviceID string) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, sessionID, staffID, date string) (*models.BookingSession, error)
	ConfirmSession(ctx context.Context, sessionID string, input models.BookingRequestInput) (*models.Appointment, error)
	CancelSession(ctx context.Context, sessionID string) error

	// Direct creation from the authenticated dashboard.
	Book(ctx context.Context, businessID, clientID, staffID, serviceID string, input models.BookingRequestInput) (*models.Appointment, error)

	// Lifecycle transitions.
	Accept(ctx context.Context, businessID, id string) (*models.Appointment, error)
	Reject(ctx context.Context, businessID, id string) (*models.Appointment, error)
	Cancel(ctx context.Context, businessID, id string) (*models.Appointment, error)
	Complete(ctx context.Context, businessID, id string) (*models.Appointment, error)
	MarkNoShow(ctx context.Context, businessID, id string) (*models.Appointment, error)

	// Reads for the dashboard and the client history view.
	GetByID(ctx context.Context, businessID, id string) (*models.Appointment, error)
	ListByRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error)
	ListByClient(ctx context.Context, businessID, clientID string) ([]models.Appointment, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	BusinessRepo businessRepo.BusinessRepository
	StaffRepo    staffRepo.StaffRepository
	ServiceRepo  serviceRepo.ServiceRepository
	ApptRepo     appointmentRepo.AppointmentRepository

	Engine    scheduling.AvailabilityEngine
	ClientSvc client.ClientService
	NotifSvc  notification.NotificationService

	// AsynqClient enqueues reminder tasks; nil disables reminders.
	AsynqClient *asynq.Client
}
