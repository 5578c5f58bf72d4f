package format

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	displayLayout         = "2 Jan 2006"
	displayLayoutThisYear = "2 Jan"
	dateOnlyLayout        = "2006-01-02"

	// InvalidDate is shown in place of a date that cannot be parsed.
	InvalidDate = "Invalid date"
)

var errEmptyDate = errors.New("no date provided")

// DisplayDate formats a date or RFC 3339 timestamp as "31 Dec 2020".
func DisplayDate(value string) (string, error) {
	return DisplayDateAt(value, time.Now())
}

// DisplayDateAt formats value relative to now. Timestamps are shown in
// now's location, and the year is dropped for dates in now's year.
func DisplayDateAt(value string, now time.Time) (string, error) {
	t, err := parseDate(value, now.Location())
	if err != nil {
		return "", err
	}
	if t.Year() == now.Year() {
		return t.Format(displayLayoutThisYear), nil
	}
	return t.Format(displayLayout), nil
}

// SafeDisplayDate never fails: an empty value yields "" and an
// unparseable one yields InvalidDate. Both cases are logged with the
// calling component so bad rows can be traced.
func SafeDisplayDate(log *slog.Logger, value, component string, now time.Time) string {
	if component == "" {
		component = "Unknown"
	}
	if strings.TrimSpace(value) == "" {
		log.Warn("no date provided", "component", component)
		return ""
	}
	s, err := DisplayDateAt(value, now)
	if err != nil {
		log.Error("invalid date value", "component", component, "value", value, "error", err)
		return InvalidDate
	}
	return s
}

func parseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errEmptyDate
	}
	if t, err := time.ParseInLocation(dateOnlyLayout, value, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t.In(loc), nil
}
