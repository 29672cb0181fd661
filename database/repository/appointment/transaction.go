// File: database/repository/appointment/transaction.go
package appointmentRepo

import (
	"context"
	"time"

	"koobings/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// CreateIfFree closes the check-then-insert race: the overlap re-check and
// the insert happen inside one causally-consistent transaction with
// majority read/write concerns, so two near-simultaneous bookings for the
// same staff slot cannot both commit.
func (r *mongoAppointmentRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Majority()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		end := appt.ScheduledFor.Add(time.Duration(appt.Duration) * time.Minute)

		// Half-open overlap against blocking appointments: existing.start < new.end
		// is expressed directly; existing.end > new.start needs the stored
		// duration, so candidates are filtered coarsely here and precisely below.
		coarse := bson.M{
			"staffId": appt.StaffID,
			"status":  bson.M{"$in": models.BlockingStatuses},
			"scheduledFor": bson.M{
				"$lt": end,
				// no appointment runs longer than a day; bounds the scan
				"$gt": appt.ScheduledFor.Add(-24 * time.Hour),
			},
		}
		cursor, err := r.coll.Find(sessCtx, coarse)
		if err != nil {
			return nil, err
		}
		var candidates []models.Appointment
		if err := cursor.All(sessCtx, &candidates); err != nil {
			return nil, err
		}
		for _, existing := range candidates {
			if appt.ScheduledFor.Before(existing.End()) && existing.ScheduledFor.Before(end) {
				return nil, ErrSlotTaken
			}
		}

		if _, err := r.coll.InsertOne(sessCtx, appt); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// unique (staffId, scheduledFor) backstop index
				return nil, ErrSlotTaken
			}
			return nil, err
		}
		return nil, nil
	}, txnOpts)

	return err
}
