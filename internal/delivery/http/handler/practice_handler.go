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

type PracticeHandler struct {
	practiceUsecase usecase.PracticeUsecase
	validator       *validator.CustomValidator
}

func NewPracticeHandler(practiceUsecase usecase.PracticeUsecase, validator *validator.CustomValidator) *PracticeHandler {
	return &PracticeHandler{
		practiceUsecase: practiceUsecase,
		validator:       validator,
	}
}

func (h *PracticeHandler) GetAllPractices(w http.ResponseWriter, r *http.Request) {
	page, size, ok := parsePagination(r)
	if !ok {
		response.BadRequest(w, "Invalid pagination parameters")
		return
	}

	var cityID *uuid.UUID
	if raw := r.URL.Query().Get("city_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid city ID")
			return
		}
		cityID = &parsed
	}
	name := r.URL.Query().Get("name")

	practices, err := h.practiceUsecase.ListPractices(r.Context(), cityID, name, page, size)
	if err != nil {
		if err == usecase.ErrInvalidPagination {
			response.BadRequest(w, "Invalid pagination parameters")
			return
		}
		response.InternalServerError(w, "Failed to get practices")
		return
	}

	response.Success(w, http.StatusOK, "Practices retrieved successfully", practices)
}

func (h *PracticeHandler) CreatePractice(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	practice, err := h.practiceUsecase.CreatePractice(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCityNotFound:
			response.NotFound(w, "City not found")
		default:
			response.InternalServerError(w, "Failed to create practice")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Practice created successfully", practice)
}

func (h *PracticeHandler) UpdatePractice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	practiceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practice ID", nil)
		return
	}

	var req dto.UpdatePracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	practice, err := h.practiceUsecase.UpdatePractice(r.Context(), practiceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPracticeNotFound:
			response.NotFound(w, "Practice not found")
		case usecase.ErrCityNotFound:
			response.NotFound(w, "City not found")
		default:
			response.InternalServerError(w, "Failed to update practice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Practice updated successfully", practice)
}

func (h *PracticeHandler) DeletePractice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	practiceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practice ID", nil)
		return
	}

	if err := h.practiceUsecase.DeletePractice(r.Context(), practiceID); err != nil {
		switch err {
		case usecase.ErrPracticeNotFound:
			response.NotFound(w, "Practice not found")
		default:
			response.InternalServerError(w, "Failed to delete practice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Practice deleted successfully", nil)
}
