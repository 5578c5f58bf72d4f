package daterange

import (
	"time"
)

// Window is the inclusive range of local dates a stats query covers.
type Window struct {
	Days     int
	Start    string
	End      string
	Location *time.Location
}

// NewWindow builds the query window for a post published at publishedAt,
// ending on today's local date in timezone.
func NewWindow(publishedAt, timezone string, now time.Time) (Window, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return Window{}, err
	}
	published, err := ParseInstant(publishedAt)
	if err != nil {
		return Window{}, err
	}
	return WindowAt(published, now, loc), nil
}

// WindowAt is NewWindow for already-parsed values.
func WindowAt(published, now time.Time, loc *time.Location) Window {
	days := DayRangeAt(published, now, loc)
	today := StartOfDay(now, loc)
	first := time.Date(today.Year(), today.Month(), today.Day()-(days-1), 0, 0, 0, 0, loc)
	return Window{
		Days:     days,
		Start:    FormatQueryDate(first),
		End:      FormatQueryDate(today),
		Location: loc,
	}
}
