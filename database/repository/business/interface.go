// File: database/repository/business/interface.go
package businessRepo

import (
	"context"

	"koobings/database"
	"koobings/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BusinessRepository interface {
	Create(ctx context.Context, b *models.Business) error
	GetByID(ctx context.Context, id string) (*models.Business, error)
	GetBySlug(ctx context.Context, slug string) (*models.Business, error)
	GetByEmail(ctx context.Context, email string) (*models.Business, error)
	UpdateSettings(ctx context.Context, id string, settings models.BusinessSettings) error
	Delete(ctx context.Context, id string) error
}

type mongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo constructs a new MongoDB BusinessRepository.
func NewMongoBusinessRepo() BusinessRepository {
	return &mongoBusinessRepo{
		coll: database.DB().Collection("businesses"),
	}
}
