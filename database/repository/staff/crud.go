// File: database/repository/staff/crud.go
package staffRepo

import (
	"context"
	"time"

	"koobings/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoStaffRepo) Create(ctx context.Context, s *models.Staff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Role == "" {
		s.Role = models.StaffRoleStandard
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, s)
	return err
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, businessID, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Staff
	err := r.coll.FindOne(ctx, bson.M{"id": id, "businessId": businessID}).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoStaffRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *mongoStaffRepo) Update(ctx context.Context, s *models.Staff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": s.ID, "businessId": s.BusinessID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoStaffRepo) Delete(ctx context.Context, businessID, id string) error {
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
