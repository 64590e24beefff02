// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"salonapi/models"
)

// Repository provides access to appointment bookings.
type Repository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)

	// FindBusyIntervals projects the bookings that occupy the given stylists
	// within [dayStart, dayEnd) and whose status is in statuses.
	FindBusyIntervals(ctx context.Context, stylistIDs []primitive.ObjectID, dayStart, dayEnd time.Time, statuses []models.BookingStatus) ([]models.BusyInterval, error)

	// MarkPaid records a confirmed payment on the booking and confirms it.
	MarkPaid(ctx context.Context, id primitive.ObjectID, price float64, method models.PaymentMethod, paidAt time.Time, invoiceNumber string, updatedBy primitive.ObjectID) error

	// CountByStatus groups bookings starting inside the optional window by
	// lifecycle state.
	CountByStatus(ctx context.Context, start, end *time.Time) ([]models.StatusCount, error)

	// FindActiveStartingBetween returns bookings in an occupying status whose
	// start instant falls inside [from, to). Used by the reminder job.
	FindActiveStartingBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error)
}
