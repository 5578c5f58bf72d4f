// Package daterange computes calendar-day query windows for stats views.
//
// All calculations are done on local calendar dates in an explicit
// timezone. Elapsed durations are never divided by 24 hours, so days of
// 23 or 25 hours around DST transitions still count as one day.
package daterange

import (
	"strings"
	"time"
)

// LoadLocation resolves an IANA timezone name. An empty or unknown name
// returns an UnknownTimezone error; there is no fallback to UTC.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, unknownTimezone(name, nil)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, unknownTimezone(name, err)
	}
	return loc, nil
}

// ParseInstant parses an RFC 3339 timestamp, with or without fractional seconds.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, invalidInput(s, err)
	}
	return t, nil
}

// DayRange returns how many calendar days a stats query must cover so
// that it includes the whole day publishedAt falls on, as seen from
// timezone. The publication day counts as day 1, so a post published
// today yields 1 and one published yesterday yields 2. The result is
// never less than 1, including for publication times after now.
func DayRange(publishedAt, timezone string, now time.Time) (int, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return 0, err
	}
	published, err := ParseInstant(publishedAt)
	if err != nil {
		return 0, err
	}
	return DayRangeAt(published, now, loc), nil
}

// DayRangeAt is DayRange for already-parsed values.
func DayRangeAt(published, now time.Time, loc *time.Location) int {
	days := CalendarDaysBetween(published, now, loc) + 1
	if days < 1 {
		return 1
	}
	return days
}

// CalendarDaysBetween returns the number of local midnights crossed going
// from a to b in loc. It is negative when b falls on an earlier local date.
func CalendarDaysBetween(a, b time.Time, loc *time.Location) int {
	return civilDay(b.In(loc)) - civilDay(a.In(loc))
}

// StartOfDay returns local midnight of the date t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// civilDay numbers a date by its year, month and day only. UTC has no
// offset changes, so consecutive dates are exactly 86400 seconds apart.
func civilDay(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Unix() / 86400)
}
