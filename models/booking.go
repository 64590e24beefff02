package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus is the lifecycle state of an appointment.
type BookingStatus string

const (
	BookingScheduled                  BookingStatus = "SCHEDULED"
	BookingConfirmed                  BookingStatus = "CONFIRMED"
	BookingInProgress                 BookingStatus = "IN_PROGRESS"
	BookingPendingStylistConfirmation BookingStatus = "PENDING_STYLIST_CONFIRMATION"
	BookingCompleted                  BookingStatus = "COMPLETED"
	BookingCancelled                  BookingStatus = "CANCELLED"
	BookingNoShow                     BookingStatus = "NO_SHOW"
)

// ActiveBookingStatuses is the subset of statuses that occupy a stylist's
// time and therefore block availability.
var ActiveBookingStatuses = []BookingStatus{
	BookingScheduled,
	BookingConfirmed,
	BookingInProgress,
	BookingPendingStylistConfirmation,
}

// Booking is an appointment for one client, stylist and service.
// Field keys follow the existing collection schema.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID      primitive.ObjectID `bson:"clienteId" json:"clienteId"`
	StylistID     primitive.ObjectID `bson:"estilistaId" json:"estilistaId"`
	ServiceID     primitive.ObjectID `bson:"servicioId" json:"servicioId"`
	Start         time.Time          `bson:"inicio" json:"inicio"`
	End           time.Time          `bson:"fin" json:"fin"`
	Status        BookingStatus      `bson:"estado" json:"estado"`
	Price         float64            `bson:"precio,omitempty" json:"precio,omitempty"`
	PaymentStatus PaymentStatus      `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	PaymentMethod PaymentMethod      `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaidAt        *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	InvoiceNumber string             `bson:"invoiceNumber,omitempty" json:"invoiceNumber,omitempty"`
	UpdatedBy     primitive.ObjectID `bson:"actualizadoPor,omitempty" json:"actualizadoPor,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// BusyInterval is the projection of a booking used by the availability
// resolver: who is busy, from when to when.
type BusyInterval struct {
	StylistID primitive.ObjectID `bson:"estilistaId"`
	Start     time.Time          `bson:"inicio"`
	End       time.Time          `bson:"fin"`
}
