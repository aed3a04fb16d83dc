package dto

import "github.com/google/uuid"

type CityResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	ZipCode string    `json:"zip_code"`
}
