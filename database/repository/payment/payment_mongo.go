// File: database/repository/payment/payment_mongo.go
package paymentRepo

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

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo returns a Repository backed by the payments collection.
func NewMongoPaymentRepo() Repository {
	repo := &mongoPaymentRepo{coll: database.DB().Collection("payments")}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("paymentRepo: %v", err)
	}
	return repo
}

func (r *mongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	if payment.Currency == "" {
		payment.Currency = "USD"
	}

	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}
	return payment, nil
}

func (r *mongoPaymentRepo) GetPendingByMethod(ctx context.Context, bookingID primitive.ObjectID, method models.PaymentMethod) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"bookingId": bookingID,
		"method":    method,
		"status":    models.PaymentPending,
	}
	var payment models.Payment
	if err := r.coll.FindOne(ctx, filter).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *mongoPaymentRepo) GetPendingByRef(ctx context.Context, transactionRef string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"transactionRef": transactionRef,
		"status":         models.PaymentPending,
	}
	var payment models.Payment
	if err := r.coll.FindOne(ctx, filter).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *mongoPaymentRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, amount float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    models.PaymentPaid,
		"amount":    amount,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark payment paid: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *mongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "bookingId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "transactionRef", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create payments indexes: %w", err)
	}
	return nil
}
