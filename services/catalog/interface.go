// Package catalog manages the bookable services a business offers.
package catalog

import (
	"context"

	serviceRepo "koobings/database/repository/service"
	staffRepo "koobings/database/repository/staff"
	"koobings/models"
)

type CatalogService interface {
	Create(ctx context.Context, svc *models.Service) (*models.Service, error)
	GetByID(ctx context.Context, businessID, id string) (*models.Service, error)
	ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Service, error)
	Update(ctx context.Context, svc *models.Service) (*models.Service, error)
	Delete(ctx context.Context, businessID, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo      serviceRepo.ServiceRepository
	StaffRepo staffRepo.StaffRepository
}
