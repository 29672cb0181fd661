// File: database/repository/appointment/queries.go
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

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id, "businessId": businessID}).Decode(&appt)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// ListBlockingByStaffAndRange returns PENDING/CONFIRMED appointments that
// overlap [from, to), ordered chronologically. The start bound looks back a
// day so an appointment spilling past midnight still occupies the following
// morning; end times need the stored duration, so the coarse query is
// narrowed precisely below. Cancelled, rejected and terminal statuses never
// block a candidate slot.
func (r *mongoAppointmentRepo) ListBlockingByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"staffId": staffID,
		"status":  bson.M{"$in": models.BlockingStatuses},
		"scheduledFor": bson.M{
			// no appointment runs longer than a day; bounds the scan
			"$gte": from.Add(-24 * time.Hour),
			"$lt":  to,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledFor", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var candidates []models.Appointment
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}

	appts := make([]models.Appointment, 0, len(candidates))
	for _, a := range candidates {
		if a.End().After(from) {
			appts = append(appts, a)
		}
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListByBusinessAndRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"businessId":   businessID,
		"scheduledFor": bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledFor", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListByClient(ctx context.Context, businessID, clientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledFor", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"businessId": businessID, "clientId": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "businessId": businessID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
