package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *mongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "estilistaId", Value: 1}, {Key: "inicio", Value: 1}}},
		{Keys: bson.D{{Key: "estado", Value: 1}}},
		{Keys: bson.D{{Key: "clienteId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create bookings indexes: %w", err)
	}
	return nil
}
