// File: database/repository/staff/availability.go
package staffRepo

import (
	"context"
	"time"

	"koobings/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoStaffRepo) GetAvailability(ctx context.Context, staffID string) (*models.StaffAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var av models.StaffAvailability
	err := r.availColl.FindOne(ctx, bson.M{"staffId": staffID}).Decode(&av)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // no availability record is a valid state, not an error
		}
		return nil, err
	}
	return &av, nil
}

func (r *mongoStaffRepo) SetAvailability(ctx context.Context, av *models.StaffAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.availColl.ReplaceOne(ctx, bson.M{"staffId": av.StaffID}, av, opts)
	return err
}

func (r *mongoStaffRepo) AddUnavailability(ctx context.Context, u *models.StaffUnavailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now()
	_, err := r.unavailColl.InsertOne(ctx, u)
	return err
}

func (r *mongoStaffRepo) ListUnavailability(ctx context.Context, staffID string, from, to time.Time) ([]models.StaffUnavailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Periods overlapping [from, to).
	filter := bson.M{
		"staffId": staffID,
		"start":   bson.M{"$lt": to},
		"end":     bson.M{"$gt": from},
	}
	cursor, err := r.unavailColl.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var periods []models.StaffUnavailability
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *mongoStaffRepo) RemoveUnavailability(ctx context.Context, staffID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.unavailColl.DeleteOne(ctx, bson.M{"id": id, "staffId": staffID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
