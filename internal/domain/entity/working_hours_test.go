package entity

import "testing"

func TestWorkingHoursOverlaps(t *testing.T) {
	base := &WorkingHours{Weekday: Monday, StartTime: "09:00", EndTime: "12:00"}

	cases := []struct {
		name  string
		other *WorkingHours
		want  bool
	}{
		{"identical", &WorkingHours{Weekday: Monday, StartTime: "09:00", EndTime: "12:00"}, true},
		{"contained", &WorkingHours{Weekday: Monday, StartTime: "10:00", EndTime: "11:00"}, true},
		{"overlaps start", &WorkingHours{Weekday: Monday, StartTime: "08:00", EndTime: "09:30"}, true},
		{"overlaps end", &WorkingHours{Weekday: Monday, StartTime: "11:30", EndTime: "13:00"}, true},
		{"adjacent before", &WorkingHours{Weekday: Monday, StartTime: "08:00", EndTime: "09:00"}, false},
		{"adjacent after", &WorkingHours{Weekday: Monday, StartTime: "12:00", EndTime: "14:00"}, false},
		{"other weekday", &WorkingHours{Weekday: Tuesday, StartTime: "09:00", EndTime: "12:00"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Overlaps(c.other); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			// Overlap is symmetric.
			if got := c.other.Overlaps(base); got != c.want {
				t.Fatalf("reversed: expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestWorkingHoursTimeRange(t *testing.T) {
	wh := &WorkingHours{StartTime: "08:00", EndTime: "16:30"}
	start, end, err := wh.TimeRange()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 8 || start.Minute() != 0 {
		t.Fatalf("unexpected start: %v", start)
	}
	if end.Hour() != 16 || end.Minute() != 30 {
		t.Fatalf("unexpected end: %v", end)
	}

	wh = &WorkingHours{StartTime: "8 am", EndTime: "16:30"}
	if _, _, err := wh.TimeRange(); err == nil {
		t.Fatalf("expected error for malformed time")
	}
}
