package entity

import (
	"testing"
	"time"
)

func TestWeekdayFromValue_Valid(t *testing.T) {
	for value := 1; value <= 7; value++ {
		weekday, err := WeekdayFromValue(value)
		if err != nil {
			t.Fatalf("value %d: unexpected error: %v", value, err)
		}
		if weekday.Value() != value {
			t.Fatalf("value %d: round trip gave %d", value, weekday.Value())
		}
	}
}

func TestWeekdayFromValue_Invalid(t *testing.T) {
	for _, value := range []int{0, 8, -1, 100} {
		if _, err := WeekdayFromValue(value); err == nil {
			t.Fatalf("value %d: expected error", value)
		}
	}
}

func TestWeekdayTimeWeekday(t *testing.T) {
	cases := []struct {
		weekday Weekday
		want    time.Weekday
	}{
		{Monday, time.Monday},
		{Wednesday, time.Wednesday},
		{Saturday, time.Saturday},
		{Sunday, time.Sunday},
	}
	for _, c := range cases {
		if got := c.weekday.TimeWeekday(); got != c.want {
			t.Fatalf("%s: expected %v, got %v", c.weekday, c.want, got)
		}
	}
}
