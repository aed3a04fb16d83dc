package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeOfDayLayout is the external representation of a time of day.
// Zero-padded, so lexical comparison of two values matches time order.
const TimeOfDayLayout = "15:04"

// WorkingHours is a recurring weekly availability window for one doctor.
type WorkingHours struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_working_hours_doctor_weekday" json:"doctor_id"`
	Weekday   Weekday   `gorm:"not null;index:idx_working_hours_doctor_weekday" json:"weekday"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"` // Format HH:MM
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`   // Format HH:MM

	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Slots  []Slot  `gorm:"foreignKey:WorkingHoursID" json:"slots,omitempty"`
}

func (WorkingHours) TableName() string {
	return "working_hours"
}

func (w *WorkingHours) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TimeRange parses the window bounds as times of day.
func (w *WorkingHours) TimeRange() (start, end time.Time, err error) {
	start, err = time.Parse(TimeOfDayLayout, w.StartTime)
	if err != nil {
		return
	}
	end, err = time.Parse(TimeOfDayLayout, w.EndTime)
	return
}

// Overlaps reports whether two half-open windows [s1,e1) and [s2,e2) on the
// same weekday share any instant: s1 < e2 AND e1 > s2. Bounds must be in the
// zero-padded TimeOfDayLayout form, where lexical order is time order.
func (w *WorkingHours) Overlaps(other *WorkingHours) bool {
	if w.Weekday != other.Weekday {
		return false
	}
	return w.StartTime < other.EndTime && w.EndTime > other.StartTime
}
