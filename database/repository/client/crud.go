// File: database/repository/client/crud.go
package clientRepo

import (
	"context"
	"time"

	"koobings/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoClientRepo) Create(ctx context.Context, c *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *mongoClientRepo) GetByID(ctx context.Context, businessID, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Client
	err := r.coll.FindOne(ctx, bson.M{"id": id, "businessId": businessID}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoClientRepo) FindByEmail(ctx context.Context, businessID, email string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Client
	err := r.coll.FindOne(ctx, bson.M{"businessId": businessID, "email": email}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoClientRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *mongoClientRepo) Update(ctx context.Context, c *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": c.ID, "businessId": c.BusinessID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoClientRepo) Delete(ctx context.Context, businessID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "businessId": businessID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
