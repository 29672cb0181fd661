// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"koobings/database"
	"koobings/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when the transactional insert finds a blocking
// appointment overlapping the requested range.
type slotTakenError struct{}

func (slotTakenError) Error() string { return "slot already taken" }

var ErrSlotTaken error = slotTakenError{}

type AppointmentRepository interface {
	// CreateIfFree inserts the appointment only if no blocking appointment
	// for the same staff member overlaps it. The conflict re-check and the
	// insert run in one transaction; ErrSlotTaken signals a lost race.
	CreateIfFree(ctx context.Context, appt *models.Appointment) error

	GetByID(ctx context.Context, businessID, id string) (*models.Appointment, error)
	ListBlockingByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]models.Appointment, error)
	ListByBusinessAndRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error)
	ListByClient(ctx context.Context, businessID, clientID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, businessID, id, status string) error
}

type mongoAppointmentRepo struct {
	coll   *mongo.Collection
	client *mongo.Client
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll:   database.DB().Collection("appointments"),
		client: database.MongoClient,
	}
}
