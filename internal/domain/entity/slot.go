package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidSlotTransition is returned when a status change is attempted
// from a state the transition does not accept.
var ErrInvalidSlotTransition = errors.New("invalid slot status transition")

// Slot is a concrete bookable unit of time generated from a working-hours
// window. The working-hours window is the only foreign key; the doctor is
// reachable by join through it.
type Slot struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	WorkingHoursID uuid.UUID  `gorm:"type:uuid;not null;index" json:"working_hours_id"`
	StartAt        time.Time  `gorm:"type:timestamp with time zone;not null;index" json:"start_at"`
	EndAt          time.Time  `gorm:"type:timestamp with time zone;not null" json:"end_at"`
	Status         SlotStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`

	WorkingHours *WorkingHours `gorm:"foreignKey:WorkingHoursID" json:"working_hours,omitempty"`
}

func (Slot) TableName() string {
	return "slots"
}

func (s *Slot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Slot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// Block marks an available slot as blocked.
func (s *Slot) Block() error {
	if s.Status != SlotStatusAvailable {
		return ErrInvalidSlotTransition
	}
	s.Status = SlotStatusBlocked
	return nil
}

// Unblock releases a blocked slot back to available.
func (s *Slot) Unblock() error {
	if s.Status != SlotStatusBlocked {
		return ErrInvalidSlotTransition
	}
	s.Status = SlotStatusAvailable
	return nil
}

// Book marks an available slot as booked. There is no transition out of
// booked; cancellation is not part of this system.
func (s *Slot) Book() error {
	if s.Status != SlotStatusAvailable {
		return ErrInvalidSlotTransition
	}
	s.Status = SlotStatusBooked
	return nil
}

// TransitionSource returns the status a slot must currently have for the
// given target status to be legal. Used by the conditional update that
// persists transitions atomically.
func TransitionSource(target SlotStatus) (SlotStatus, error) {
	switch target {
	case SlotStatusBlocked, SlotStatusBooked:
		return SlotStatusAvailable, nil
	case SlotStatusAvailable:
		return SlotStatusBlocked, nil
	}
	return "", ErrInvalidSlotTransition
}

// SlotFilter is a domain-level filter for querying slots. All fields are
// optional and combined with AND.
type SlotFilter struct {
	DoctorID       *uuid.UUID // requires join through working_hours
	WorkingHoursID *uuid.UUID
	DateFrom       *time.Time // compared against the date part of start_at, inclusive
	DateTo         *time.Time // compared against the date part of start_at, inclusive
	Status         *SlotStatus
}
