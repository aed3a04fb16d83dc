package dto

import (
	"time"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID             uuid.UUID `json:"id"`
	WorkingHoursID uuid.UUID `json:"working_hours_id"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `json:"status"`
}
