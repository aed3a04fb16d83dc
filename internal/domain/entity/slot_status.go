package entity

import "fmt"

// SlotStatus represents the lifecycle status of an appointment slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusBlocked   SlotStatus = "blocked"
)

// SlotStatusFromValue converts an external string to a SlotStatus.
func SlotStatusFromValue(value string) (SlotStatus, error) {
	switch SlotStatus(value) {
	case SlotStatusAvailable, SlotStatusBooked, SlotStatusBlocked:
		return SlotStatus(value), nil
	}
	return "", fmt.Errorf("invalid slot status value: %q", value)
}
