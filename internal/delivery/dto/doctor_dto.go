package dto

import "github.com/google/uuid"

// Request DTOs

type CreateDoctorRequest struct {
	FirstName     string      `json:"first_name" validate:"required"`
	LastName      string      `json:"last_name" validate:"required"`
	PracticeID    *uuid.UUID  `json:"practice_id" validate:"omitempty"`
	SpecialityIDs []uuid.UUID `json:"speciality_ids" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	FirstName     string      `json:"first_name" validate:"required"`
	LastName      string      `json:"last_name" validate:"required"`
	PracticeID    *uuid.UUID  `json:"practice_id" validate:"omitempty"`
	SpecialityIDs []uuid.UUID `json:"speciality_ids" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID           uuid.UUID            `json:"id"`
	FirstName    string               `json:"first_name"`
	LastName     string               `json:"last_name"`
	PracticeID   *uuid.UUID           `json:"practice_id,omitempty"`
	Practice     *PracticeResponse    `json:"practice,omitempty"`
	Specialities []SpecialityResponse `json:"specialities,omitempty"`
}
