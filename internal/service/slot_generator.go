package service

import (
	"errors"
	"time"

	"doctor-provider/internal/domain/entity"
)

const (
	// DefaultHorizonWeeks is the forward-looking span over which slots are
	// materialized when a working-hours window is created.
	DefaultHorizonWeeks = 4

	// DefaultSlotDuration is the fixed length of a generated slot.
	DefaultSlotDuration = 30 * time.Minute
)

// ErrSlotDuration is returned when the configured slot duration is not positive.
var ErrSlotDuration = errors.New("slot duration must be positive")

// GenerateSlots expands a working-hours window into the concrete slots of the
// next horizonWeeks occurrences of its weekday, starting at horizonStart.
// The day of horizonStart counts as the first occurrence when the weekday
// matches and the window has not started yet. Each occurrence is tiled into
// consecutive slots of slotDuration; a trailing remainder shorter than
// slotDuration is discarded. The function is pure and never fails for a
// structurally valid window; an empty tiling yields an empty sequence.
func GenerateSlots(wh *entity.WorkingHours, horizonStart time.Time, horizonWeeks int, slotDuration time.Duration, loc *time.Location) ([]entity.Slot, error) {
	if slotDuration <= 0 {
		return nil, ErrSlotDuration
	}
	start, end, err := wh.TimeRange()
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}

	now := horizonStart.In(loc)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	offset := (int(wh.Weekday.TimeWeekday()) - int(day.Weekday()) + 7) % 7
	if offset == 0 {
		windowStart := day.Add(timeOfDay(start))
		if !now.Before(windowStart) {
			offset = 7
		}
	}
	first := day.AddDate(0, 0, offset)

	slots := []entity.Slot{}
	for week := 0; week < horizonWeeks; week++ {
		occurrence := first.AddDate(0, 0, 7*week)
		windowStart := occurrence.Add(timeOfDay(start))
		windowEnd := occurrence.Add(timeOfDay(end))

		for cur := windowStart; !cur.Add(slotDuration).After(windowEnd); cur = cur.Add(slotDuration) {
			slots = append(slots, entity.Slot{
				WorkingHoursID: wh.ID,
				StartAt:        cur,
				EndAt:          cur.Add(slotDuration),
				Status:         entity.SlotStatusAvailable,
			})
		}
	}
	return slots, nil
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}
