package converter

import (
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
)

// WorkingHoursToResponse converts a WorkingHours entity to WorkingHoursResponse DTO
func WorkingHoursToResponse(workingHours *entity.WorkingHours) *dto.WorkingHoursResponse {
	if workingHours == nil {
		return nil
	}
	return &dto.WorkingHoursResponse{
		ID:        workingHours.ID,
		DoctorID:  workingHours.DoctorID,
		Weekday:   workingHours.Weekday.Value(),
		StartTime: workingHours.StartTime,
		EndTime:   workingHours.EndTime,
	}
}

// WorkingHoursToResponses converts a slice of WorkingHours entities to WorkingHoursResponse DTOs
func WorkingHoursToResponses(windows []entity.WorkingHours) []dto.WorkingHoursResponse {
	responses := make([]dto.WorkingHoursResponse, len(windows))
	for i := range windows {
		responses[i] = *WorkingHoursToResponse(&windows[i])
	}
	return responses
}
