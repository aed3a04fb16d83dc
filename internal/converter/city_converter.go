package converter

import (
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
)

// CityToResponse converts a City entity to CityResponse DTO
func CityToResponse(city *entity.City) *dto.CityResponse {
	if city == nil {
		return nil
	}
	return &dto.CityResponse{
		ID:      city.ID,
		Name:    city.Name,
		ZipCode: city.ZipCode,
	}
}

// CitiesToResponses converts a slice of City entities to CityResponse DTOs
func CitiesToResponses(cities []entity.City) []dto.CityResponse {
	responses := make([]dto.CityResponse, len(cities))
	for i := range cities {
		responses[i] = *CityToResponse(&cities[i])
	}
	return responses
}
