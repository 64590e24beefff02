package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ensureIndexes creates the indexes the availability query depends on.
func (r *mongoSlotRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "service", Value: 1}, {Key: "dayOfWeek", Value: 1}, {Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "stylist", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create serviceslots indexes: %w", err)
	}
	return nil
}
