// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"koobings/database"
	"koobings/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClientRepository interface {
	Create(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, businessID, id string) (*models.Client, error)
	FindByEmail(ctx context.Context, businessID, email string) (*models.Client, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, businessID, id string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{
		coll: database.DB().Collection("clients"),
	}
}
