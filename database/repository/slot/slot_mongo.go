// File: database/repository/slot/slot_mongo.go
package slotRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"salonapi/database"
	"salonapi/models"
)

type mongoSlotRepo struct {
	coll      *mongo.Collection
	usersColl *mongo.Collection
}

// NewMongoSlotRepo returns a Repository backed by the serviceslots collection.
func NewMongoSlotRepo() Repository {
	db := database.DB()
	repo := &mongoSlotRepo{
		coll:      db.Collection("serviceslots"),
		usersColl: db.Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("slotRepo: %v", err)
	}
	return repo
}

func (r *mongoSlotRepo) FindActiveForDay(ctx context.Context, serviceID primitive.ObjectID, dayLabel string, stylistID *primitive.ObjectID) ([]models.SlotWithStylist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	match := bson.M{
		"service":   serviceID,
		"dayOfWeek": dayLabel,
		"isActive":  true,
	}
	if stylistID != nil {
		match["stylist"] = *stylistID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         r.usersColl.Name(),
			"localField":   "stylist",
			"foreignField": "_id",
			"as":           "stylistDoc",
		}}},
		{{Key: "$unwind", Value: "$stylistDoc"}},
		{{Key: "$sort", Value: bson.M{"startMin": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.SlotWithStylist
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding service slots: %w", err)
	}
	return slots, nil
}
