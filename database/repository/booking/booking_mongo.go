// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonapi/database"
	"salonapi/models"
)

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a Repository backed by the bookings collection.
func NewMongoBookingRepo() Repository {
	repo := &mongoBookingRepo{coll: database.DB().Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("bookingRepo: %v", err)
	}
	return repo
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) FindBusyIntervals(ctx context.Context, stylistIDs []primitive.ObjectID, dayStart, dayEnd time.Time, statuses []models.BookingStatus) ([]models.BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"estilistaId": bson.M{"$in": stylistIDs},
		"inicio":      bson.M{"$gte": dayStart, "$lt": dayEnd},
		"estado":      bson.M{"$in": statuses},
	}
	projection := bson.M{"estilistaId": 1, "inicio": 1, "fin": 1}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch busy intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var busy []models.BusyInterval
	if err := cursor.All(ctx, &busy); err != nil {
		return nil, fmt.Errorf("error decoding busy intervals: %w", err)
	}
	return busy, nil
}

func (r *mongoBookingRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, price float64, method models.PaymentMethod, paidAt time.Time, invoiceNumber string, updatedBy primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"precio":         price,
			"paymentStatus":  models.PaymentPaid,
			"paymentMethod":  method,
			"paidAt":         paidAt,
			"invoiceNumber":  invoiceNumber,
			"estado":         models.BookingConfirmed,
			"actualizadoPor": updatedBy,
		},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking paid: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBookingRepo) CountByStatus(ctx context.Context, start, end *time.Time) ([]models.StatusCount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
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
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"inicio": window}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":   "$estado",
		"count": bson.M{"$sum": 1},
	}}})

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings by status: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []models.StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("error decoding status counts: %w", err)
	}
	return counts, nil
}

func (r *mongoBookingRepo) FindActiveStartingBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"inicio": bson.M{"$gte": from, "$lt": to},
		"estado": bson.M{"$in": models.ActiveBookingStatuses},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding upcoming bookings: %w", err)
	}
	return bookings, nil
}
