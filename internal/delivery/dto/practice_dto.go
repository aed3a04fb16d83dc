package dto

import "github.com/google/uuid"

// Request DTOs

type CreatePracticeRequest struct {
	Name        string    `json:"name" validate:"required"`
	Street      string    `json:"street" validate:"omitempty"`
	HouseNumber string    `json:"house_number" validate:"omitempty"`
	Phone       string    `json:"phone" validate:"omitempty"`
	Email       string    `json:"email" validate:"omitempty,email"`
	PostalCode  string    `json:"postal_code" validate:"omitempty"`
	CityID      uuid.UUID `json:"city_id" validate:"required"`
}

type UpdatePracticeRequest struct {
	Name        string    `json:"name" validate:"required"`
	Street      string    `json:"street" validate:"omitempty"`
	HouseNumber string    `json:"house_number" validate:"omitempty"`
	Phone       string    `json:"phone" validate:"omitempty"`
	Email       string    `json:"email" validate:"omitempty,email"`
	PostalCode  string    `json:"postal_code" validate:"omitempty"`
	CityID      uuid.UUID `json:"city_id" validate:"required"`
}

// Response DTOs

type PracticeResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Street      string        `json:"street"`
	HouseNumber string        `json:"house_number"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	PostalCode  string        `json:"postal_code"`
	CityID      uuid.UUID     `json:"city_id"`
	City        *CityResponse `json:"city,omitempty"`
}
