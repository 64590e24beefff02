// File: database/repository/rating/rating_mongo.go
package ratingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonapi/database"
	"salonapi/models"
)

// Repository provides the reporting view over client reviews.
type Repository interface {
	// ByStylist averages review stars per stylist for reviews created inside
	// the optional window, ordered best first.
	ByStylist(ctx context.Context, start, end *time.Time) ([]models.StylistRating, error)
}

type mongoRatingRepo struct {
	coll *mongo.Collection
}

// NewMongoRatingRepo returns a Repository backed by the ratings collection.
func NewMongoRatingRepo() Repository {
	return &mongoRatingRepo{coll: database.DB().Collection("ratings")}
}

func (r *mongoRatingRepo) ByStylist(ctx context.Context, start, end *time.Time) ([]models.StylistRating, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{}
	if start != nil || end != nil {
		window := bson.M{}
		if start != nil {
			window["$gte"] = *start
		}
		if end != nil {
			window["$lte"] = *end
		}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"createdAt": window}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "estilistaId",
			"foreignField": "_id",
			"as":           "stylist",
		}}},
		bson.D{{Key: "$unwind", Value: "$stylist"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$toString": "$stylist._id"},
			"stylistName": bson.M{"$first": bson.M{"$concat": bson.A{
				"$stylist.nombre", " ", bson.M{"$ifNull": bson.A{"$stylist.apellido", ""}},
			}}},
			"avgRating":    bson.M{"$avg": "$estrellas"},
			"ratingsCount": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"avgRating": -1}}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings by stylist: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.StylistRating
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding stylist ratings: %w", err)
	}
	return rows, nil
}
