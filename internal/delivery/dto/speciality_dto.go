package dto

import "github.com/google/uuid"

type SpecialityResponse struct {
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`
}

type SpecialityListResponse struct {
	Specialities []SpecialityResponse `json:"specialities"`
	Total        int                  `json:"total"`
}
