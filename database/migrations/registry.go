// File: database/migrations/registry.go
package migrations

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"koobings/models"
)

// registry lists every data-correction migration in order. New ones are
// appended with the next version number and never reordered.
var registry = []Migration{
	{
		Version: 1,
		Name:    "normalize legacy ACCEPTED status to CONFIRMED",
		Run:     normalizeAcceptedStatus,
	},
	{
		Version: 2,
		Name:    "backfill appointment duration from service",
		Run:     backfillAppointmentDuration,
	},
	{
		Version: 3,
		Name:    "normalize staff schedules to canonical shape",
		Run:     normalizeScheduleShape,
	},
}

func normalizeAcceptedStatus(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("appointments").UpdateMany(ctx,
		bson.M{"status": models.AppointmentAccepted},
		bson.M{"$set": bson.M{"status": models.AppointmentConfirmed}},
	)
	return err
}

func backfillAppointmentDuration(ctx context.Context, db *mongo.Database) error {
	appts := db.Collection("appointments")
	services := db.Collection("services")

	cursor, err := appts.Find(ctx, bson.M{"$or": []bson.M{
		{"duration": bson.M{"$exists": false}},
		{"duration": bson.M{"$lte": 0}},
	}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var appt models.Appointment
		if err := cursor.Decode(&appt); err != nil {
			return err
		}
		var svc models.Service
		if err := services.FindOne(ctx, bson.M{"id": appt.ServiceID}).Decode(&svc); err != nil {
			if err == mongo.ErrNoDocuments {
				continue // orphaned appointment, leave for manual review
			}
			return err
		}
		if _, err := appts.UpdateOne(ctx,
			bson.M{"id": appt.ID},
			bson.M{"$set": bson.M{"duration": svc.Duration}},
		); err != nil {
			return err
		}
	}
	return cursor.Err()
}

// normalizeScheduleShape rewrites legacy per-weekday {start, end} documents
// into the canonical {isWorking, intervals: [...]} shape.
func normalizeScheduleShape(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("staff_availability")

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return err
		}
		schedule, ok := raw["schedule"].(bson.M)
		if !ok {
			continue
		}

		changed := false
		for day, v := range schedule {
			entry, ok := v.(bson.M)
			if !ok {
				continue
			}
			if _, canonical := entry["isWorking"]; canonical {
				continue
			}
			start, hasStart := entry["start"].(string)
			end, hasEnd := entry["end"].(string)
			if !hasStart || !hasEnd {
				continue
			}
			schedule[day] = bson.M{
				"isWorking": true,
				"intervals": bson.A{bson.M{"start": start, "end": end}},
			}
			changed = true
		}
		if !changed {
			continue
		}

		staffID, ok := raw["staffId"].(string)
		if !ok {
			return fmt.Errorf("availability document without staffId")
		}
		if _, err := coll.UpdateOne(ctx,
			bson.M{"staffId": staffID},
			bson.M{"$set": bson.M{"schedule": schedule}},
		); err != nil {
			return err
		}
	}
	return cursor.Err()
}
