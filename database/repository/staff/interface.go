// File: database/repository/staff/interface.go
package staffRepo

import (
	"context"
	"time"

	"koobings/database"
	"koobings/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type StaffRepository interface {
	Create(ctx context.Context, s *models.Staff) error
	GetByID(ctx context.Context, businessID, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.Staff, error)
	Update(ctx context.Context, s *models.Staff) error
	Delete(ctx context.Context, businessID, id string) error

	// Weekly availability (one record per staff member).
	GetAvailability(ctx context.Context, staffID string) (*models.StaffAvailability, error)
	SetAvailability(ctx context.Context, av *models.StaffAvailability) error

	// Ad-hoc unavailability periods.
	AddUnavailability(ctx context.Context, u *models.StaffUnavailability) error
	ListUnavailability(ctx context.Context, staffID string, from, to time.Time) ([]models.StaffUnavailability, error)
	RemoveUnavailability(ctx context.Context, staffID, id string) error
}

type mongoStaffRepo struct {
	coll         *mongo.Collection
	availColl    *mongo.Collection
	unavailColl  *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.DB()
	return &mongoStaffRepo{
		coll:        db.Collection("staff"),
		availColl:   db.Collection("staff_availability"),
		unavailColl: db.Collection("staff_unavailability"),
	}
}
