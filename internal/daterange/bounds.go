package daterange

import (
	"time"
)

// QueryDateLayout is the date format stats queries expect.
const QueryDateLayout = "2006-01-02"

// DayBounds calculates the UTC start and end of a calendar date in the specified timezone.
// Start is local midnight and end is the last nanosecond before the next local midnight.
// Times are constructed explicitly in local time so DST transitions are handled correctly.
func DayBounds(date, timezone string) (start, end time.Time, err error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	t, err := time.ParseInLocation(QueryDateLayout, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, invalidInput(date, err)
	}

	startLocal := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	start = startLocal.UTC()

	nextDay := time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, loc)
	end = nextDay.Add(-time.Nanosecond).UTC()

	return start, end, nil
}

// FormatQueryDate formats t as a query date in t's own location.
func FormatQueryDate(t time.Time) string {
	return t.Format(QueryDateLayout)
}
