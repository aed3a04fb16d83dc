package dto

import "github.com/google/uuid"

// Request DTOs

type CreateWorkingHoursRequest struct {
	Weekday   int    `json:"weekday" validate:"required,min=1,max=7"`
	StartTime string `json:"start_time" validate:"required,timeofday"`
	EndTime   string `json:"end_time" validate:"required,timeofday"`
}

type UpdateWorkingHoursRequest struct {
	Weekday   int    `json:"weekday" validate:"required,min=1,max=7"`
	StartTime string `json:"start_time" validate:"required,timeofday"`
	EndTime   string `json:"end_time" validate:"required,timeofday"`
}

// Response DTOs

type WorkingHoursResponse struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type WorkingHoursListResponse struct {
	WorkingHours []WorkingHoursResponse `json:"working_hours"`
	Total        int                    `json:"total"`
}

type WorkingHoursAvailability struct {
	WorkingHoursID uuid.UUID `json:"working_hours_id"`
	Weekday        int       `json:"weekday"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	AvailableSlots int64     `json:"available_slots"`
}

type DoctorAvailabilityResponse struct {
	DoctorID     uuid.UUID                  `json:"doctor_id"`
	WorkingHours []WorkingHoursAvailability `json:"working_hours"`
}
