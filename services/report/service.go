// File: services/report/service.go
package report

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingRepo "salonapi/database/repository/booking"
	paymentRepo "salonapi/database/repository/payment"
	ratingRepo "salonapi/database/repository/rating"
	"salonapi/models"
)

// Service produces management reports over payments, bookings and
// reviews.
type Service interface {
	// Summary runs every aggregation for the requested window.
	Summary(ctx context.Context, period models.ReportPeriod, from, to *time.Time) (*models.ReportSummary, error)

	// Revenue returns just the bucketed revenue rows.
	Revenue(ctx context.Context, period models.ReportPeriod, from, to *time.Time) (models.ReportRange, []models.RevenueBucket, error)

	// StylistRevenue returns just the per-stylist revenue rows.
	StylistRevenue(ctx context.Context, period models.ReportPeriod, from, to *time.Time) (models.ReportRange, []models.StylistRevenue, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Payments paymentRepo.Repository
	Bookings bookingRepo.Repository
	Ratings  ratingRepo.Repository
	Location *time.Location
	Logger   *zap.Logger
}

func (s *DefaultReportService) Summary(ctx context.Context, period models.ReportPeriod, from, to *time.Time) (*models.ReportSummary, error) {
	rng := NormalizeRange(period, from, to, time.Now(), s.Location)

	revenue, err := s.Payments.RevenueByPeriod(ctx, rng.Period, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	byStylist, err := s.Payments.RevenueByStylist(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by stylist: %w", err)
	}
	topServices, err := s.Payments.TopServices(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top services: %w", err)
	}
	byStatus, err := s.Bookings.CountByStatus(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}
	ratings, err := s.Ratings.ByStylist(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	totals := models.ReportTotals{}
	for _, b := range revenue {
		totals.TotalRevenue += b.Total
	}
	for _, r := range byStylist {
		totals.TotalBookings += r.BookingsCount
	}

	s.Logger.Info("report summary computed",
		zap.String("period", string(rng.Period)),
		zap.Int("revenueBuckets", len(revenue)),
		zap.Int("stylists", len(byStylist)))

	return &models.ReportSummary{
		Range:            rng,
		Totals:           totals,
		RevenueByPeriod:  revenue,
		RevenueByStylist: byStylist,
		TopServices:      topServices,
		BookingsByStatus: byStatus,
		RatingsByStylist: ratings,
	}, nil
}

func (s *DefaultReportService) Revenue(ctx context.Context, period models.ReportPeriod, from, to *time.Time) (models.ReportRange, []models.RevenueBucket, error) {
	rng := NormalizeRange(period, from, to, time.Now(), s.Location)
	rows, err := s.Payments.RevenueByPeriod(ctx, rng.Period, rng.Start, rng.End)
	if err != nil {
		return rng, nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	return rng, rows, nil
}

func (s *DefaultReportService) StylistRevenue(ctx context.Context, period models.ReportPeriod, from, to *time.Time) (models.ReportRange, []models.StylistRevenue, error) {
	rng := NormalizeRange(period, from, to, time.Now(), s.Location)
	rows, err := s.Payments.RevenueByStylist(ctx, rng.Start, rng.End)
	if err != nil {
		return rng, nil, fmt.Errorf("failed to aggregate revenue by stylist: %w", err)
	}
	return rng, rows, nil
}
