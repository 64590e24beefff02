// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"salonapi/models"
)

// Repository provides access to payment records and their reporting
// aggregations.
type Repository interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)

	// GetPendingByMethod returns the open payment for a booking with the
	// given method, or mongo.ErrNoDocuments.
	GetPendingByMethod(ctx context.Context, bookingID primitive.ObjectID, method models.PaymentMethod) (*models.Payment, error)

	// GetPendingByRef returns the open payment carrying the given provider
	// reference, or mongo.ErrNoDocuments.
	GetPendingByRef(ctx context.Context, transactionRef string) (*models.Payment, error)

	// MarkPaid transitions a payment to PAID and fixes the final amount.
	MarkPaid(ctx context.Context, id primitive.ObjectID, amount float64) error

	// RevenueByPeriod buckets paid revenue by the period's date format.
	RevenueByPeriod(ctx context.Context, period models.ReportPeriod, start, end *time.Time) ([]models.RevenueBucket, error)

	// RevenueByStylist attributes paid revenue to stylists via the booking
	// join, ordered by revenue descending.
	RevenueByStylist(ctx context.Context, start, end *time.Time) ([]models.StylistRevenue, error)

	// TopServices returns the ten highest-grossing services in the window.
	TopServices(ctx context.Context, start, end *time.Time) ([]models.ServiceRevenue, error)
}
