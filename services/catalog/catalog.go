package catalog

import (
	"context"
	"fmt"
	"time"

	"koobings/models"

	"github.com/google/uuid"
)

func (s *DefaultCatalogService) Create(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if err := s.validate(ctx, svc); err != nil {
		return nil, err
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	svc.Active = true
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) GetByID(ctx context.Context, businessID, id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Service, error) {
	return s.Repo.ListByBusiness(ctx, businessID, activeOnly)
}

func (s *DefaultCatalogService) Update(ctx context.Context, svc *models.Service) (*models.Service, error) {
	existing, err := s.Repo.GetByID(ctx, svc.BusinessID, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	if err := s.validate(ctx, svc); err != nil {
		return nil, err
	}
	svc.CreatedAt = existing.CreatedAt
	svc.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, businessID, id string) error {
	if err := s.Repo.Delete(ctx, businessID, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) validate(ctx context.Context, svc *models.Service) error {
	if svc.BusinessID == "" {
		return fmt.Errorf("service must belong to a business")
	}
	if svc.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if svc.Duration <= 0 {
		return fmt.Errorf("service duration must be positive")
	}
	if svc.Price < 0 {
		return fmt.Errorf("service price must not be negative")
	}
	// Every restricted staff ID must exist within the same business.
	for _, staffID := range svc.StaffIDs {
		if _, err := s.StaffRepo.GetByID(ctx, svc.BusinessID, staffID); err != nil {
			return fmt.Errorf("unknown staff member %s in restriction list", staffID)
		}
	}
	return nil
}
