// File: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"koobings/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the appointment indexes using a fresh repository.
func EnsureIndexes() error {
	r := NewMongoAppointmentRepo().(*mongoAppointmentRepo)
	return r.ensureIndexes()
}

func (r *mongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary read pattern: staff calendar over a date range
		{
			Keys:    bson.D{{Key: "staffId", Value: 1}, {Key: "scheduledFor", Value: 1}},
			Options: options.Index().SetName("staff_scheduled_idx"),
		},
		// Business calendar views
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "scheduledFor", Value: 1}},
			Options: options.Index().SetName("business_scheduled_idx"),
		},
		// Backstop against double-booking: unique (staffId, scheduledFor)
		// restricted to blocking statuses, so cancelled slots remain reusable.
		{
			Keys: bson.D{{Key: "staffId", Value: 1}, {Key: "scheduledFor", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("staff_slot_unique").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": models.BlockingStatuses},
				}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
