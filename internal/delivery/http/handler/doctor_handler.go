package handler

import (
	"encoding/json"
	"net/http"

	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
	"doctor-provider/internal/usecase"
	"doctor-provider/pkg/response"
	"doctor-provider/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	page, size, ok := parsePagination(r)
	if !ok {
		response.BadRequest(w, "Invalid pagination parameters")
		return
	}

	filter := &entity.DoctorFilter{
		FirstName: r.URL.Query().Get("first_name"),
		LastName:  r.URL.Query().Get("last_name"),
	}
	if raw := r.URL.Query().Get("practice_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid practice ID")
			return
		}
		filter.PracticeID = &parsed
	}
	if raw := r.URL.Query().Get("city_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid city ID")
			return
		}
		filter.CityID = &parsed
	}
	if raw := r.URL.Query().Get("speciality_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid speciality ID")
			return
		}
		filter.SpecialityID = &parsed
	}

	doctors, err := h.doctorUsecase.ListDoctors(r.Context(), filter, page, size)
	if err != nil {
		if err == usecase.ErrInvalidPagination {
			response.BadRequest(w, "Invalid pagination parameters")
			return
		}
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPracticeNotFound:
			response.NotFound(w, "Practice not found")
		case usecase.ErrSpecialityNotFound:
			response.NotFound(w, "Speciality not found")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPracticeNotFound:
			response.NotFound(w, "Practice not found")
		case usecase.ErrSpecialityNotFound:
			response.NotFound(w, "Speciality not found")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), doctorID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}
