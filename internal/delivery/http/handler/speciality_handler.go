package handler

import (
	"net/http"

	"doctor-provider/internal/usecase"
	"doctor-provider/pkg/response"
)

type SpecialityHandler struct {
	specialityUsecase usecase.SpecialityUsecase
}

func NewSpecialityHandler(specialityUsecase usecase.SpecialityUsecase) *SpecialityHandler {
	return &SpecialityHandler{
		specialityUsecase: specialityUsecase,
	}
}

func (h *SpecialityHandler) GetAllSpecialities(w http.ResponseWriter, r *http.Request) {
	specialities, err := h.specialityUsecase.ListSpecialities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialities")
		return
	}

	response.Success(w, http.StatusOK, "Specialities retrieved successfully", specialities)
}
