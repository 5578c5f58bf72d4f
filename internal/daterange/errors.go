package daterange

import (
	"errors"
	"fmt"
)

// Kind classifies daterange failures.
type Kind string

const (
	// InvalidInput means a timestamp or date could not be parsed.
	InvalidInput Kind = "InvalidInput"
	// UnknownTimezone means the timezone name is not in the tz database.
	UnknownTimezone Kind = "UnknownTimezone"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownTimezone = errors.New("unknown timezone")
)

// Error carries the kind of failure and the offending input.
type Error struct {
	Kind  Kind
	Input string
	Err   error
}

func (e *Error) Error() string {
	msg := "invalid input"
	if e.Kind == UnknownTimezone {
		msg = "unknown timezone"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", msg, e.Input, e.Err)
	}
	return fmt.Sprintf("%s %q", msg, e.Input)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == InvalidInput
	case ErrUnknownTimezone:
		return e.Kind == UnknownTimezone
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func invalidInput(input string, err error) error {
	return &Error{Kind: InvalidInput, Input: input, Err: err}
}

func unknownTimezone(name string, err error) error {
	return &Error{Kind: UnknownTimezone, Input: name, Err: err}
}
