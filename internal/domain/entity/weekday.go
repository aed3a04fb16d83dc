package entity

import (
	"fmt"
	"time"
)

// Weekday is a day of the week with the ISO numbering Monday=1 .. Sunday=7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayFromValue converts an external integer (1-7) to a Weekday.
func WeekdayFromValue(value int) (Weekday, error) {
	if value < int(Monday) || value > int(Sunday) {
		return 0, fmt.Errorf("invalid weekday value: %d, must be between 1 and 7", value)
	}
	return Weekday(value), nil
}

// Value returns the external integer representation (1-7).
func (w Weekday) Value() int {
	return int(w)
}

// TimeWeekday maps to the stdlib numbering (Sunday=0).
func (w Weekday) TimeWeekday() time.Weekday {
	if w == Sunday {
		return time.Sunday
	}
	return time.Weekday(w)
}

func (w Weekday) String() string {
	switch w {
	case Monday:
		return "MONDAY"
	case Tuesday:
		return "TUESDAY"
	case Wednesday:
		return "WEDNESDAY"
	case Thursday:
		return "THURSDAY"
	case Friday:
		return "FRIDAY"
	case Saturday:
		return "SATURDAY"
	case Sunday:
		return "SUNDAY"
	}
	return "UNKNOWN"
}
