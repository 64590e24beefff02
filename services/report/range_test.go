package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonapi/models"
)

func TestNormalizeRange_Day(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 12, 15, 45, 0, 0, loc)

	r := NormalizeRange(models.PeriodDay, nil, nil, now, loc)

	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, loc), *r.Start)
	assert.Equal(t, 23, r.End.Hour())
	assert.Equal(t, 12, r.End.Day())
	assert.Equal(t, "12/06/2024", r.Label)
}

func TestNormalizeRange_WeekStartsMonday(t *testing.T) {
	loc := time.UTC

	// Wednesday snaps back to Monday the 10th.
	wed := time.Date(2024, 6, 12, 9, 0, 0, 0, loc)
	r := NormalizeRange(models.PeriodWeek, nil, nil, wed, loc)
	require.NotNil(t, r.Start)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), *r.Start)
	assert.Equal(t, 16, r.End.Day())

	// Sunday belongs to the week that started the previous Monday.
	sun := time.Date(2024, 6, 16, 9, 0, 0, 0, loc)
	r = NormalizeRange(models.PeriodWeek, nil, nil, sun, loc)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), *r.Start)

	// Monday is its own week start.
	mon := time.Date(2024, 6, 10, 0, 30, 0, 0, loc)
	r = NormalizeRange(models.PeriodWeek, nil, nil, mon, loc)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), *r.Start)
}

func TestNormalizeRange_Month(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 2, 20, 12, 0, 0, 0, loc)

	r := NormalizeRange(models.PeriodMonth, nil, nil, now, loc)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), *r.Start)
	// 2024 is a leap year.
	assert.Equal(t, 29, r.End.Day())
}

func TestNormalizeRange_Year(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 7, 4, 12, 0, 0, 0, loc)

	r := NormalizeRange(models.PeriodYear, nil, nil, now, loc)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, loc), *r.Start)
	assert.Equal(t, time.December, r.End.Month())
	assert.Equal(t, 31, r.End.Day())
}

func TestNormalizeRange_CustomPassesBoundsThrough(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, loc)
	from := time.Date(2024, 3, 5, 14, 0, 0, 0, loc)
	to := time.Date(2024, 3, 20, 14, 0, 0, 0, loc)

	r := NormalizeRange(models.PeriodCustom, &from, &to, now, loc)

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, loc), *r.Start)
	assert.Equal(t, 20, r.End.Day())
	assert.Equal(t, 23, r.End.Hour())
}

func TestNormalizeRange_CustomUnbounded(t *testing.T) {
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	r := NormalizeRange(models.PeriodCustom, nil, nil, now, time.UTC)

	assert.Nil(t, r.Start)
	assert.Nil(t, r.End)
	assert.Equal(t, models.PeriodCustom, r.Period)
}

func TestNormalizeRange_UnknownDefaultsToDay(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	r := NormalizeRange(models.ReportPeriod("fortnight"), nil, nil, now, time.UTC)

	assert.Equal(t, models.PeriodDay, r.Period)
}
