package converter

import (
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
)

// PracticeToResponse converts a Practice entity to PracticeResponse DTO
func PracticeToResponse(practice *entity.Practice) *dto.PracticeResponse {
	if practice == nil {
		return nil
	}
	return &dto.PracticeResponse{
		ID:          practice.ID,
		Name:        practice.Name,
		Street:      practice.Street,
		HouseNumber: practice.HouseNumber,
		Phone:       practice.Phone,
		Email:       practice.Email,
		PostalCode:  practice.PostalCode,
		CityID:      practice.CityID,
		City:        CityToResponse(practice.City),
	}
}

// PracticesToResponses converts a slice of Practice entities to PracticeResponse DTOs
func PracticesToResponses(practices []entity.Practice) []dto.PracticeResponse {
	responses := make([]dto.PracticeResponse, len(practices))
	for i := range practices {
		responses[i] = *PracticeToResponse(&practices[i])
	}
	return responses
}
