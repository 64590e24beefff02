// File: database/repository/service/service_mongo.go
package serviceRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"salonapi/database"
	"salonapi/models"
)

// Repository provides read access to the service catalogue.
type Repository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a Repository backed by the services collection.
func NewMongoServiceRepo() Repository {
	return &mongoServiceRepo{coll: database.DB().Collection("services")}
}

func (r *mongoServiceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&service); err != nil {
		return nil, err
	}
	return &service, nil
}
