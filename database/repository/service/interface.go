// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"koobings/database"
	"koobings/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	GetByID(ctx context.Context, businessID, id string) (*models.Service, error)
	ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Service, error)
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, businessID, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}
