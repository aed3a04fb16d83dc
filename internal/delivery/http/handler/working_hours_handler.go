package handler

import (
	"encoding/json"
	"net/http"

	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/usecase"
	"doctor-provider/pkg/response"
	"doctor-provider/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type WorkingHoursHandler struct {
	workingHoursUsecase usecase.WorkingHoursUsecase
	validator           *validator.CustomValidator
}

func NewWorkingHoursHandler(workingHoursUsecase usecase.WorkingHoursUsecase, validator *validator.CustomValidator) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		workingHoursUsecase: workingHoursUsecase,
		validator:           validator,
	}
}

func (h *WorkingHoursHandler) CreateWorkingHours(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.CreateWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	workingHours, err := h.workingHoursUsecase.CreateWorkingHours(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidWeekday:
			response.BadRequest(w, "Weekday must be between 1 (Monday) and 7 (Sunday)")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Time must use the HH:MM format")
		case usecase.ErrInvalidTimeRange:
			response.BadRequest(w, "Start time must be before end time")
		case usecase.ErrOverlappingWorkingHours:
			response.Conflict(w, "Working hours overlap an existing window for this doctor")
		default:
			response.InternalServerError(w, "Failed to create working hours")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Working hours created successfully", workingHours)
}

func (h *WorkingHoursHandler) GetWorkingHoursByDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	workingHours, err := h.workingHoursUsecase.GetWorkingHoursByDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get working hours")
		return
	}

	response.Success(w, http.StatusOK, "Working hours retrieved successfully", workingHours)
}

func (h *WorkingHoursHandler) UpdateWorkingHours(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workingHoursID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid working hours ID", nil)
		return
	}

	var req dto.UpdateWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	workingHours, err := h.workingHoursUsecase.UpdateWorkingHours(r.Context(), workingHoursID, &req)
	if err != nil {
		switch err {
		case usecase.ErrWorkingHoursNotFound:
			response.NotFound(w, "Working hours not found")
		case usecase.ErrInvalidWeekday:
			response.BadRequest(w, "Weekday must be between 1 (Monday) and 7 (Sunday)")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Time must use the HH:MM format")
		case usecase.ErrInvalidTimeRange:
			response.BadRequest(w, "Start time must be before end time")
		case usecase.ErrOverlappingWorkingHours:
			response.Conflict(w, "Working hours overlap an existing window for this doctor")
		default:
			response.InternalServerError(w, "Failed to update working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours updated successfully", workingHours)
}

func (h *WorkingHoursHandler) DeleteWorkingHours(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workingHoursID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid working hours ID", nil)
		return
	}

	if err := h.workingHoursUsecase.DeleteWorkingHours(r.Context(), workingHoursID); err != nil {
		switch err {
		case usecase.ErrWorkingHoursNotFound:
			response.NotFound(w, "Working hours not found")
		default:
			response.InternalServerError(w, "Failed to delete working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours deleted successfully", nil)
}

func (h *WorkingHoursHandler) GetDoctorAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	availability, err := h.workingHoursUsecase.GetDoctorAvailability(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}
