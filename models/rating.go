package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a client review of a completed appointment.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID primitive.ObjectID `bson:"bookingId" json:"bookingId"`
	ClientID  primitive.ObjectID `bson:"clienteId" json:"clienteId"`
	StylistID primitive.ObjectID `bson:"estilistaId" json:"estilistaId"`
	Stars     int                `bson:"estrellas" json:"estrellas"`
	Comment   string             `bson:"comentario,omitempty" json:"comentario,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
