package converter

import (
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}
	response := &dto.DoctorResponse{
		ID:         doctor.ID,
		FirstName:  doctor.FirstName,
		LastName:   doctor.LastName,
		PracticeID: doctor.PracticeID,
		Practice:   PracticeToResponse(doctor.Practice),
	}
	if len(doctor.Specialities) > 0 {
		response.Specialities = SpecialitiesToResponses(doctor.Specialities)
	}
	return response
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
