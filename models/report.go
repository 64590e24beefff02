package models

import "time"

// ReportPeriod selects how report rows are bucketed in time.
type ReportPeriod string

const (
	PeriodDay    ReportPeriod = "day"
	PeriodWeek   ReportPeriod = "week"
	PeriodMonth  ReportPeriod = "month"
	PeriodYear   ReportPeriod = "year"
	PeriodCustom ReportPeriod = "custom"
)

// ReportRange is a resolved reporting window. Start/End are nil when the
// caller asked for an unbounded custom range.
type ReportRange struct {
	Period ReportPeriod `json:"period"`
	Start  *time.Time   `json:"from,omitempty"`
	End    *time.Time   `json:"to,omitempty"`
	Label  string       `json:"label"`
}

// RevenueBucket is paid revenue aggregated into one period bucket.
type RevenueBucket struct {
	Period string  `bson:"_id" json:"period"`
	Total  float64 `bson:"total" json:"total"`
	Count  int     `bson:"count" json:"count"`
}

// StylistRevenue is paid revenue attributed to one stylist.
type StylistRevenue struct {
	StylistID     string  `bson:"_id" json:"stylistId"`
	StylistName   string  `bson:"stylistName" json:"stylistName"`
	TotalRevenue  float64 `bson:"totalRevenue" json:"totalRevenue"`
	BookingsCount int     `bson:"bookingsCount" json:"bookingsCount"`
}

// ServiceRevenue is paid revenue attributed to one service.
type ServiceRevenue struct {
	ServiceID     string  `bson:"_id" json:"serviceId"`
	ServiceName   string  `bson:"serviceName" json:"serviceName"`
	TotalRevenue  float64 `bson:"totalRevenue" json:"totalRevenue"`
	BookingsCount int     `bson:"bookingsCount" json:"bookingsCount"`
}

// StatusCount is the number of bookings in one lifecycle state.
type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int    `bson:"count" json:"count"`
}

// StylistRating is the averaged review score for one stylist.
type StylistRating struct {
	StylistID    string  `bson:"_id" json:"stylistId"`
	StylistName  string  `bson:"stylistName" json:"stylistName"`
	AvgRating    float64 `bson:"avgRating" json:"avgRating"`
	RatingsCount int     `bson:"ratingsCount" json:"ratingsCount"`
}

// ReportTotals summarizes the window: paid revenue and paid bookings.
type ReportTotals struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalBookings int     `json:"totalBookings"`
}

// ReportSummary bundles every aggregation for one reporting window.
type ReportSummary struct {
	Range            ReportRange      `json:"range"`
	Totals           ReportTotals     `json:"totals"`
	RevenueByPeriod  []RevenueBucket  `json:"revenueByPeriod"`
	RevenueByStylist []StylistRevenue `json:"revenueByStylist"`
	TopServices      []ServiceRevenue `json:"topServices"`
	BookingsByStatus []StatusCount    `json:"bookingsByStatus"`
	RatingsByStylist []StylistRating  `json:"ratingsByStylist"`
}
