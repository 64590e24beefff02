package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salonapi/models"
)

type fakeSlotRepo struct {
	slots []models.SlotWithStylist
	calls int

	gotService primitive.ObjectID
	gotDay     string
	gotStylist *primitive.ObjectID
}

func (f *fakeSlotRepo) FindActiveForDay(ctx context.Context, serviceID primitive.ObjectID, dayLabel string, stylistID *primitive.ObjectID) ([]models.SlotWithStylist, error) {
	f.calls++
	f.gotService = serviceID
	f.gotDay = dayLabel
	f.gotStylist = stylistID

	var out []models.SlotWithStylist
	for _, s := range f.slots {
		if stylistID != nil && s.StylistID != *stylistID {
			continue
		}
		if s.DayOfWeek == dayLabel && s.ServiceID == serviceID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	busy  []models.BusyInterval
	calls int
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindBusyIntervals(ctx context.Context, stylistIDs []primitive.ObjectID, dayStart, dayEnd time.Time, statuses []models.BookingStatus) ([]models.BusyInterval, error) {
	f.calls++
	var out []models.BusyInterval
	for _, b := range f.busy {
		for _, id := range stylistIDs {
			if b.StylistID == id && !b.Start.Before(dayStart) && b.Start.Before(dayEnd) {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, price float64, method models.PaymentMethod, paidAt time.Time, invoiceNumber string, updatedBy primitive.ObjectID) error {
	return nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, start, end *time.Time) ([]models.StatusCount, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindActiveStartingBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	return nil, nil
}

func newSlot(service, stylist primitive.ObjectID, day string, startMin, endMin int, first, last string) models.SlotWithStylist {
	return models.SlotWithStylist{
		ServiceSlot: models.ServiceSlot{
			ID:        primitive.NewObjectID(),
			ServiceID: service,
			StylistID: stylist,
			DayOfWeek: day,
			StartMin:  startMin,
			EndMin:    endMin,
			IsActive:  true,
		},
		Stylist: models.SlotStylist{ID: stylist, FirstName: first, LastName: last},
	}
}

func newResolver(slots *fakeSlotRepo, bookings *fakeBookingRepo) *DefaultResolver {
	return &DefaultResolver{Slots: slots, Bookings: bookings, Location: time.UTC}
}

// 2024-06-10 is a Monday.
const monday = "2024-06-10"

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestComputeAvailability_MalformedServiceID(t *testing.T) {
	slots := &fakeSlotRepo{}
	bookings := &fakeBookingRepo{}
	r := newResolver(slots, bookings)

	windows, err := r.ComputeAvailability(context.Background(), monday, "not-an-id", "")
	require.NoError(t, err)
	assert.Empty(t, windows)
	assert.Zero(t, slots.calls, "no store access on malformed service id")
	assert.Zero(t, bookings.calls)
}

func TestComputeAvailability_MalformedDate(t *testing.T) {
	slots := &fakeSlotRepo{}
	r := newResolver(slots, &fakeBookingRepo{})

	for _, date := range []string{"2024-06", "junk", "2024-00-10", "2024-06-00", ""} {
		windows, err := r.ComputeAvailability(context.Background(), date, primitive.NewObjectID().Hex(), "")
		require.NoError(t, err, date)
		assert.Empty(t, windows, date)
	}
	assert.Zero(t, slots.calls)
}

func TestComputeAvailability_NoTemplates(t *testing.T) {
	slots := &fakeSlotRepo{}
	bookings := &fakeBookingRepo{}
	r := newResolver(slots, bookings)

	windows, err := r.ComputeAvailability(context.Background(), monday, primitive.NewObjectID().Hex(), "")
	require.NoError(t, err)
	assert.Empty(t, windows)
	assert.Equal(t, 1, slots.calls)
	assert.Zero(t, bookings.calls, "no booking query when no templates match")
}

func TestComputeAvailability_FreeSlotMaterialized(t *testing.T) {
	service := primitive.NewObjectID()
	stylist := primitive.NewObjectID()

	slots := &fakeSlotRepo{slots: []models.SlotWithStylist{
		newSlot(service, stylist, "LUNES", 540, 600, "Ana", "Mora"),
	}}
	r := newResolver(slots, &fakeBookingRepo{})

	windows, err := r.ComputeAvailability(context.Background(), monday, service.Hex(), "")
	require.NoError(t, err)
	require.Len(t, windows, 1)

	assert.Equal(t, "2024-06-10T09:00:00Z", windows[0].Start)
	assert.Equal(t, "2024-06-10T10:00:00Z", windows[0].End)
	assert.Equal(t, "Ana Mora", windows[0].StylistName)
	assert.Equal(t, stylist.Hex(), windows[0].StylistID)
	assert.Equal(t, "LUNES", slots.gotDay)
}

func TestComputeAvailability_OverlapExcluded(t *testing.T) {
	service := primitive.NewObjectID()
	stylist := primitive.NewObjectID()

	slots := &fakeSlotRepo{slots: []models.SlotWithStylist{
		newSlot(service, stylist, "LUNES", 540, 600, "Ana", "Mora"),
	}}
	bookings := &fakeBookingRepo{busy: []models.BusyInterval{
		{StylistID: stylist, Start: at(9, 30), End: at(10, 30)},
	}}
	r := newResolver(slots, bookings)

	windows, err := r.ComputeAvailability(context.Background(), monday, service.Hex(), "")
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestComputeAvailability_TouchingEndpointsNotOverlap(t *testing.T) {
	service := primitive.NewObjectID()
	stylist := primitive.NewObjectID()

	slots := &fakeSlotRepo{slots: []models.SlotWithStylist{
		newSlot(service, stylist, "LUNES", 540, 600, "Ana", "Mora"),
	}}
	bookings := &fakeBookingRepo{busy: []models.BusyInterval{
		{StylistID: stylist, Start: at(10, 0), End: at(11, 0)},
	}}
	r := newResolver(slots, bookings)

	windows, err := r.ComputeAvailability(context.Background(), monday, service.Hex(), "")
	require.NoError(t, err)
	assert.Len(t, windows, 1, "a booking starting exactly at slot end must not block the slot")
}

func TestComputeAvailability_BusyOtherStylistDoesNotBlock(t *testing.T) {
	service := primitive.NewObjectID()
	ana := primitive.NewObjectID()
	luz := primitive.NewObjectID()

	slots := &fakeSlotRepo{slots: []models.SlotWithStylist{
		newSlot(service, ana, "LUNES", 540, 600, "Ana", "Mora"),
	}}
	bookings := &fakeBookingRepo{busy: []models.BusyInterval{
		{StylistID: luz, Start: at(9, 0), End: at(10, 0)},
	}}
	r := newResolver(slots, bookings)

	windows, err := r.ComputeAvailability(context.Background(), monday, service.Hex(), "")
	require.NoError(t, err)
	assert.Len(t, windows, 1)
}

func TestComputeAvailability_StylistFilter(t *testing.T) {
	service := primitive.NewObjectID()
	ana := primitive.NewObjectID()
	other := primitive.NewObjectID()

	slots := &fakeSlotRepo{slots: []models.SlotWithStylist{
		newSlot(service, ana, "LUNES", 540, 600, "Ana", "Mora"),
	}}
	r := newResolver(slots, &fakeBookingRepo{})

	// A valid stylist with no templates that day yields nothing, even though
	// another stylist is free.
	windows, err := r.ComputeAvailability(context.Background(), monday, service.Hex(), other.Hex())
	require.NoError(t, err)
	assert.Empty(t, windows)
	require.NotNil(t, slots.gotStylist)
	assert.Equal(t, other, *slots.gotStylist)
}

func TestComputeAvailability_MalformedStylistIgnored(t *testing.T) {
	service := primitive.NewObjectID()
	ana := primitive.NewObjectID()

	slots := &fakeSlotRepo{slots: []models.SlotWithStylist{
		newSlot(service, ana, "LUNES", 540, 600, "Ana", "Mora"),
	}}
	r := newResolver(slots, &fakeBookingRepo{})

	windows, err := r.ComputeAvailability(context.Background(), monday, service.Hex(), "zzz")
	require.NoError(t, err)
	assert.Len(t, windows, 1, "malformed stylist filter is treated as absent")
	assert.Nil(t, slots.gotStylist)
}

func TestComputeAvailability_TwoStylistsOrdered(t *testing.T) {
	service := primitive.NewObjectID()
	ana := primitive.NewObjectID()
	luz := primitive.NewObjectID()

	slots := &fakeSlotRepo{slots: []models.SlotWithStylist{
		newSlot(service, ana, "LUNES", 540, 600, "Ana", "Mora"),
		newSlot(service, luz, "LUNES", 840, 900, "Luz", "Vera"),
	}}
	r := newResolver(slots, &fakeBookingRepo{})

	windows, err := r.ComputeAvailability(context.Background(), monday, service.Hex(), "")
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, "2024-06-10T09:00:00Z", windows[0].Start)
	assert.Equal(t, "2024-06-10T14:00:00Z", windows[1].Start)
}

func TestComputeAvailability_Idempotent(t *testing.T) {
	service := primitive.NewObjectID()
	ana := primitive.NewObjectID()

	slots := &fakeSlotRepo{slots: []models.SlotWithStylist{
		newSlot(service, ana, "LUNES", 540, 600, "Ana", "Mora"),
		newSlot(service, ana, "LUNES", 660, 720, "Ana", "Mora"),
	}}
	bookings := &fakeBookingRepo{busy: []models.BusyInterval{
		{StylistID: ana, Start: at(11, 15), End: at(11, 45)},
	}}
	r := newResolver(slots, bookings)

	first, err := r.ComputeAvailability(context.Background(), monday, service.Hex(), "")
	require.NoError(t, err)
	second, err := r.ComputeAvailability(context.Background(), monday, service.Hex(), "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWeekdayLabels_SundayFirst(t *testing.T) {
	// 2024-06-09 is a Sunday; the table must be Sunday-first.
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "DOMINGO", weekdayLabels[int(sunday.Weekday())])
	assert.Equal(t, "SABADO", weekdayLabels[int(sunday.AddDate(0, 0, 6).Weekday())])
}
