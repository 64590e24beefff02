package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is one bookable salon service.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"nombre" json:"nombre"`
	DurationMin int                `bson:"duracionMin" json:"duracionMin"`
	Price       float64            `bson:"precio" json:"precio"`
	Active      bool               `bson:"activo" json:"activo"`
}
