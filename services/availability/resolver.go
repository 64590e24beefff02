// File: services/availability/resolver.go
package availability

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingRepo "salonapi/database/repository/booking"
	slotRepo "salonapi/database/repository/slot"
	"salonapi/models"
)

// weekdayLabels maps time.Weekday (0 = Sunday) to the labels stored on
// slot documents. The Sunday-first ordering matches the persisted data;
// do not reorder.
var weekdayLabels = [7]string{
	"DOMINGO",
	"LUNES",
	"MARTES",
	"MIERCOLES",
	"JUEVES",
	"VIERNES",
	"SABADO",
}

type busyInterval struct {
	start time.Time
	end   time.Time
}

// DefaultResolver is the production implementation. It is stateless and
// safe for concurrent use.
type DefaultResolver struct {
	Slots    slotRepo.Repository
	Bookings bookingRepo.Repository
	// Location fixes the local-midnight day boundary. Defaults to the
	// server location, which is what reservation flows have always used;
	// reports pin their own time zone instead. Known inconsistency, kept
	// until the intended behavior is confirmed.
	Location *time.Location
}

func (r *DefaultResolver) location() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.Local
}

func (r *DefaultResolver) ComputeAvailability(ctx context.Context, date, serviceID, stylistID string) ([]models.AvailabilityWindow, error) {
	serviceOID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return []models.AvailabilityWindow{}, nil
	}

	dayDate, ok := parseDay(date, r.location())
	if !ok {
		return []models.AvailabilityWindow{}, nil
	}
	dayLabel := weekdayLabels[int(dayDate.Weekday())]

	// A malformed stylist filter is ignored, not rejected.
	var stylistOID *primitive.ObjectID
	if stylistID != "" {
		if oid, err := primitive.ObjectIDFromHex(stylistID); err == nil {
			stylistOID = &oid
		}
	}

	slots, err := r.Slots.FindActiveForDay(ctx, serviceOID, dayLabel, stylistOID)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return []models.AvailabilityWindow{}, nil
	}

	stylistIDs := distinctStylists(slots)

	dayStart := dayDate
	dayEnd := dayDate.Add(24 * time.Hour)

	busy, err := r.Bookings.FindBusyIntervals(ctx, stylistIDs, dayStart, dayEnd, models.ActiveBookingStatuses)
	if err != nil {
		return nil, err
	}

	busyByStylist := make(map[string][]busyInterval)
	for _, b := range busy {
		key := b.StylistID.Hex()
		busyByStylist[key] = append(busyByStylist[key], busyInterval{start: b.Start, end: b.End})
	}

	windows := make([]models.AvailabilityWindow, 0, len(slots))
	for _, slot := range slots {
		slotStart := dayDate.Add(time.Duration(slot.StartMin) * time.Minute)
		slotEnd := dayDate.Add(time.Duration(slot.EndMin) * time.Minute)

		key := slot.Stylist.ID.Hex()
		if overlapsAny(busyByStylist[key], slotStart, slotEnd) {
			continue
		}

		name := strings.TrimSpace(slot.Stylist.FirstName + " " + slot.Stylist.LastName)
		windows = append(windows, models.AvailabilityWindow{
			SlotID:      slot.ID.Hex(),
			StylistID:   key,
			StylistName: name,
			Start:       slotStart.UTC().Format(time.RFC3339),
			End:         slotEnd.UTC().Format(time.RFC3339),
		})
	}

	return windows, nil
}

// overlapsAny reports whether any busy interval collides with the slot.
// Open-interval test: touching endpoints do not count as overlap.
func overlapsAny(busy []busyInterval, slotStart, slotEnd time.Time) bool {
	for _, b := range busy {
		if b.start.Before(slotEnd) && b.end.After(slotStart) {
			return true
		}
	}
	return false
}

// parseDay parses "YYYY-MM-DD" into midnight of that day in loc.
func parseDay(date string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || year == 0 || month == 0 || day == 0 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

func distinctStylists(slots []models.SlotWithStylist) []primitive.ObjectID {
	seen := make(map[string]struct{}, len(slots))
	ids := make([]primitive.ObjectID, 0, len(slots))
	for _, slot := range slots {
		key := slot.Stylist.ID.Hex()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, slot.Stylist.ID)
	}
	return ids
}
