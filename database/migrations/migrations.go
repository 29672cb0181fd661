// File: database/migrations/migrations.go
package migrations

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"koobings/utils"
)

// Migration is one versioned, idempotent data-correction operation. Run must
// be safe to execute more than once (check-before-write); the runner records
// applied versions so it normally only runs each once.
type Migration struct {
	Version int
	Name    string
	Run     func(ctx context.Context, db *mongo.Database) error
}

type appliedRecord struct {
	Version    int       `bson:"version"`
	Name       string    `bson:"name"`
	AppliedAt  time.Time `bson:"appliedAt"`
	DurationMS int64     `bson:"durationMs"`
}

// RunPending applies every registered migration whose version is not yet
// recorded in the migrations collection, in ascending version order.
func RunPending(ctx context.Context, db *mongo.Database) error {
	logger := utils.GetLogger()
	coll := db.Collection("migrations")

	for _, m := range registry {
		n, err := coll.CountDocuments(ctx, bson.M{"version": m.Version})
		if err != nil {
			return fmt.Errorf("failed to read migration state: %w", err)
		}
		if n > 0 {
			continue
		}

		logger.Info("Applying migration",
			zap.Int("version", m.Version), zap.String("name", m.Name))
		started := time.Now()
		if err := m.Run(ctx, db); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		rec := appliedRecord{
			Version:    m.Version,
			Name:       m.Name,
			AppliedAt:  time.Now(),
			DurationMS: time.Since(started).Milliseconds(),
		}
		if _, err := coll.InsertOne(ctx, rec); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		logger.Info("Migration applied",
			zap.Int("version", m.Version),
			zap.Duration("took", time.Since(started)))
	}
	return nil
}

// Applied returns the recorded migration history, oldest first.
func Applied(ctx context.Context, db *mongo.Database) ([]appliedRecord, error) {
	cursor, err := db.Collection("migrations").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []appliedRecord
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
