// File: database/repository/business/crud.go
package businessRepo

import (
	"context"
	"time"

	"koobings/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoBusinessRepo) Create(ctx context.Context, b *models.Business) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, b)
	return err
}

func (r *mongoBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoBusinessRepo) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoBusinessRepo) GetByEmail(ctx context.Context, email string) (*models.Business, error) {
	return r.findOne(ctx, bson.M{"ownerEmail": email})
}

func (r *mongoBusinessRepo) findOne(ctx context.Context, filter bson.M) (*models.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Business
	if err := r.coll.FindOne(ctx, filter).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoBusinessRepo) UpdateSettings(ctx context.Context, id string, settings models.BusinessSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"settings": settings, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBusinessRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
