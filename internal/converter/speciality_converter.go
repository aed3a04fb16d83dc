package converter

import (
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
)

// SpecialityToResponse converts a Speciality entity to SpecialityResponse DTO
func SpecialityToResponse(speciality *entity.Speciality) *dto.SpecialityResponse {
	if speciality == nil {
		return nil
	}
	return &dto.SpecialityResponse{
		ID:   speciality.ID,
		Type: string(speciality.Type),
	}
}

// SpecialitiesToResponses converts a slice of Speciality entities to SpecialityResponse DTOs
func SpecialitiesToResponses(specialities []entity.Speciality) []dto.SpecialityResponse {
	responses := make([]dto.SpecialityResponse, len(specialities))
	for i := range specialities {
		responses[i] = *SpecialityToResponse(&specialities[i])
	}
	return responses
}
