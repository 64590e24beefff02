// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"salonapi/models"
)

// Repository provides read access to recurring service slot templates.
type Repository interface {
	// FindActiveForDay returns the active slot templates for a service on a
	// weekday label, each joined with its stylist's display fields, ordered
	// by start offset ascending. A non-nil stylistID narrows the search.
	FindActiveForDay(ctx context.Context, serviceID primitive.ObjectID, dayLabel string, stylistID *primitive.ObjectID) ([]models.SlotWithStylist, error)
}
