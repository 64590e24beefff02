// File: services/report/range.go
package report

import (
	"time"

	"salonapi/models"
)

// NormalizeRange resolves a requested period into concrete window bounds
// in the reporting time zone. "day", "week", "month" and "year" snap to
// the calendar unit containing now; "custom" passes the caller's bounds
// through untouched (either may be nil for an open end). Weeks start on
// Monday.
func NormalizeRange(period models.ReportPeriod, from, to *time.Time, now time.Time, loc *time.Location) models.ReportRange {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	switch period {
	case models.PeriodWeek:
		day := startOfDay(now)
		monday := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
		start := monday
		end := endOfDay(monday.AddDate(0, 0, 6))
		return models.ReportRange{
			Period: period,
			Start:  &start,
			End:    &end,
			Label:  "Semana del " + start.Format("02/01/2006"),
		}

	case models.PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end := endOfDay(start.AddDate(0, 1, -1))
		return models.ReportRange{
			Period: period,
			Start:  &start,
			End:    &end,
			Label:  start.Format("January 2006"),
		}

	case models.PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end := endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, loc))
		return models.ReportRange{
			Period: period,
			Start:  &start,
			End:    &end,
			Label:  start.Format("2006"),
		}

	case models.PeriodCustom:
		r := models.ReportRange{Period: period, Label: "Personalizado"}
		if from != nil {
			start := startOfDay(from.In(loc))
			r.Start = &start
			r.Label += " " + start.Format("02/01/2006")
		}
		if to != nil {
			end := endOfDay(to.In(loc))
			r.End = &end
			r.Label += " - " + end.Format("02/01/2006")
		}
		return r

	default: // day
		start := startOfDay(now)
		end := endOfDay(now)
		return models.ReportRange{
			Period: models.PeriodDay,
			Start:  &start,
			End:    &end,
			Label:  start.Format("02/01/2006"),
		}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
