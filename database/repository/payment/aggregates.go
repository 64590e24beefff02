// File: database/repository/payment/aggregates.go
package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonapi/config"
	"salonapi/models"
)

// reportBase normalizes legacy payment documents (fecha/monto vs
// createdAt/amount) and keeps only paid rows inside the optional window.
func reportBase(start, end *time.Time) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"reportDate":   bson.M{"$ifNull": bson.A{"$fecha", "$createdAt"}},
			"reportAmount": bson.M{"$ifNull": bson.A{"$amount", "$monto"}},
		}}},
		{{Key: "$match", Value: bson.M{"status": models.PaymentPaid}}},
	}

	if start != nil || end != nil {
		window := bson.M{}
		if start != nil {
			window["$gte"] = *start
		}
		if end != nil {
			window["$lte"] = *end
		}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"reportDate": window}}})
	}
	return pipeline
}

// periodGroupID builds the bucket key expression for a reporting period.
// Day and custom ranges bucket per calendar day, week per ISO week.
func periodGroupID(period models.ReportPeriod) interface{} {
	tz := config.AppConfig.ReportTimeZone

	switch period {
	case models.PeriodMonth:
		return bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$reportDate", "timezone": tz}}
	case models.PeriodYear:
		return bson.M{"$dateToString": bson.M{"format": "%Y", "date": "$reportDate", "timezone": tz}}
	case models.PeriodWeek:
		return bson.M{"$concat": bson.A{
			bson.M{"$toString": bson.M{"$isoWeekYear": "$reportDate"}},
			"-W",
			bson.M{"$toString": bson.M{"$isoWeek": "$reportDate"}},
		}}
	default: // day, custom
		return bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$reportDate", "timezone": tz}}
	}
}

func (r *mongoPaymentRepo) RevenueByPeriod(ctx context.Context, period models.ReportPeriod, start, end *time.Time) ([]models.RevenueBucket, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := reportBase(start, end)
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   periodGroupID(period),
			"total": bson.M{"$sum": "$reportAmount"},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by period: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []models.RevenueBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("error decoding revenue buckets: %w", err)
	}
	return buckets, nil
}

func (r *mongoPaymentRepo) RevenueByStylist(ctx context.Context, start, end *time.Time) ([]models.StylistRevenue, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := reportBase(start, end)
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "bookings",
			"localField":   "bookingId",
			"foreignField": "_id",
			"as":           "booking",
		}}},
		bson.D{{Key: "$unwind", Value: "$booking"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "booking.estilistaId",
			"foreignField": "_id",
			"as":           "stylist",
		}}},
		bson.D{{Key: "$unwind", Value: "$stylist"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$toString": "$stylist._id"},
			"stylistName": bson.M{"$first": bson.M{"$concat": bson.A{
				"$stylist.nombre", " ", bson.M{"$ifNull": bson.A{"$stylist.apellido", ""}},
			}}},
			"totalRevenue":  bson.M{"$sum": "$reportAmount"},
			"bookingsCount": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalRevenue": -1}}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by stylist: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.StylistRevenue
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding stylist revenue: %w", err)
	}
	return rows, nil
}

func (r *mongoPaymentRepo) TopServices(ctx context.Context, start, end *time.Time) ([]models.ServiceRevenue, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := reportBase(start, end)
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "bookings",
			"localField":   "bookingId",
			"foreignField": "_id",
			"as":           "booking",
		}}},
		bson.D{{Key: "$unwind", Value: "$booking"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "services",
			"localField":   "booking.servicioId",
			"foreignField": "_id",
			"as":           "service",
		}}},
		bson.D{{Key: "$unwind", Value: "$service"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$toString": "$service._id"},
			"serviceName":   bson.M{"$first": "$service.nombre"},
			"totalRevenue":  bson.M{"$sum": "$reportAmount"},
			"bookingsCount": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalRevenue": -1}}},
		bson.D{{Key: "$limit", Value: 10}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top services: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.ServiceRevenue
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding service revenue: %w", err)
	}
	return rows, nil
}
