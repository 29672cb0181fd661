package business

import (
	"context"

	businessRepo "koobings/database/repository/business"
	"koobings/models"
)

type BusinessService interface {
	Register(ctx context.Context, reg models.BusinessRegistration) (*models.Business, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.Business, error)
	GetBySlug(ctx context.Context, slug string) (*models.Business, error)
	UpdateSettings(ctx context.Context, id string, settings models.BusinessSettings) (*models.Business, error)
}

// AuthResponse carries a freshly issued token with its subject.
type AuthResponse struct {
	Token    string           `json:"token"`
	Business *models.Business `json:"business"`
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo businessRepo.BusinessRepository
}
