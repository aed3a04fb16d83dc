package converter

import (
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
)

// SlotToResponse converts a Slot entity to SlotResponse DTO
func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}
	return &dto.SlotResponse{
		ID:             slot.ID,
		WorkingHoursID: slot.WorkingHoursID,
		StartAt:        slot.StartAt,
		EndAt:          slot.EndAt,
		Status:         string(slot.Status),
	}
}

// SlotsToResponses converts a slice of Slot entities to SlotResponse DTOs
func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i := range slots {
		responses[i] = *SlotToResponse(&slots[i])
	}
	return responses
}
