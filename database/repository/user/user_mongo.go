// File: database/repository/user/user_mongo.go
package userRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonapi/database"
	"salonapi/models"
)

// Repository provides read access to salon accounts. Account management
// itself lives in a separate admin surface; this backend only looks users
// up for invoices and emails.
type Repository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a Repository backed by the users collection.
func NewMongoUserRepo() Repository {
	return &mongoUserRepo{coll: database.DB().Collection("users")}
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	projection := bson.M{"nombre": 1, "apellido": 1, "email": 1, "role": 1}
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(projection)).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
