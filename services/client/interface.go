// Package client manages business customer records.
package client

import (
	"context"

	businessRepo "koobings/database/repository/business"
	clientRepo "koobings/database/repository/client"
	"koobings/models"
)

type ClientService interface {
	Create(ctx context.Context, c *models.Client) (*models.Client, error)
	GetByID(ctx context.Context, businessID, id string) (*models.Client, error)
	FindOrCreate(ctx context.Context, businessID, name, email, phone string) (*models.Client, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.Client, error)
	Update(ctx context.Context, c *models.Client) (*models.Client, error)
	Delete(ctx context.Context, businessID, id string) error
}

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo         clientRepo.ClientRepository
	BusinessRepo businessRepo.BusinessRepository
}
