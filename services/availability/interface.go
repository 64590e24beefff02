package availability

import (
	"context"

	"salonapi/models"
)

// Resolver computes the free appointment windows for a service on a date.
type Resolver interface {
	// ComputeAvailability takes a "YYYY-MM-DD" date, a service identifier
	// and an optional stylist identifier (empty string for none) and returns
	// the bookable windows ordered by slot start offset.
	//
	// Malformed identifiers and dates never raise an error: the result is
	// simply empty. Only backing-store failures are returned as errors.
	ComputeAvailability(ctx context.Context, date, serviceID, stylistID string) ([]models.AvailabilityWindow, error)
}
