package staff

import (
	"context"
	"time"

	staffRepo "koobings/database/repository/staff"
	"koobings/models"
)

type StaffService interface {
	Create(ctx context.Context, st *models.Staff, password string) (*models.Staff, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, businessID, id string) (*models.Staff, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.Staff, error)
	Update(ctx context.Context, st *models.Staff) (*models.Staff, error)
	Delete(ctx context.Context, businessID, id string) error

	SetSchedule(ctx context.Context, businessID, staffID string, schedule map[string]models.DaySchedule) error
	GetSchedule(ctx context.Context, businessID, staffID string) (*models.StaffAvailability, error)

	AddUnavailability(ctx context.Context, businessID string, u *models.StaffUnavailability) (*models.StaffUnavailability, error)
	ListUnavailability(ctx context.Context, businessID, staffID string, from, to time.Time) ([]models.StaffUnavailability, error)
	RemoveUnavailability(ctx context.Context, businessID, staffID, id string) error
}

// AuthResponse carries a freshly issued staff token.
type AuthResponse struct {
	Token string        `json:"token"`
	Staff *models.Staff `json:"staff"`
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}
