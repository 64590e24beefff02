package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ServiceSlot is a recurring weekly availability window: one stylist
// offering one service on one weekday, defined by minute offsets from
// midnight. Managed by staff; the availability resolver only reads it.
type ServiceSlot struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ServiceID primitive.ObjectID `bson:"service" json:"service"`
	StylistID primitive.ObjectID `bson:"stylist" json:"stylist"`
	DayOfWeek string             `bson:"dayOfWeek" json:"dayOfWeek"` // DOMINGO..SABADO
	StartMin  int                `bson:"startMin" json:"startMin"`   // minutes from midnight
	EndMin    int                `bson:"endMin" json:"endMin"`       // minutes from midnight
	IsActive  bool               `bson:"isActive" json:"isActive"`
}

// SlotWithStylist is a slot joined with its stylist's display fields.
type SlotWithStylist struct {
	ServiceSlot `bson:",inline"`
	Stylist     SlotStylist `bson:"stylistDoc" json:"stylistDoc"`
}

type SlotStylist struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	FirstName string             `bson:"nombre" json:"nombre"`
	LastName  string             `bson:"apellido,omitempty" json:"apellido,omitempty"`
}

// AvailabilityWindow is one bookable opportunity for a given date and
// service. Derived per request, never persisted.
type AvailabilityWindow struct {
	SlotID      string `json:"slotId"`
	StylistID   string `json:"stylistId"`
	StylistName string `json:"stylistName"`
	Start       string `json:"start"` // ISO-8601, UTC
	End         string `json:"end"`   // ISO-8601, UTC
}
