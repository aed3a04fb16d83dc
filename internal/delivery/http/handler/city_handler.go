package handler

import (
	"net/http"

	"doctor-provider/internal/usecase"
	"doctor-provider/pkg/response"
)

type CityHandler struct {
	cityUsecase usecase.CityUsecase
}

func NewCityHandler(cityUsecase usecase.CityUsecase) *CityHandler {
	return &CityHandler{
		cityUsecase: cityUsecase,
	}
}

func (h *CityHandler) GetAllCities(w http.ResponseWriter, r *http.Request) {
	page, size, ok := parsePagination(r)
	if !ok {
		response.BadRequest(w, "Invalid pagination parameters")
		return
	}

	name := r.URL.Query().Get("name")
	zipCode := r.URL.Query().Get("zip_code")

	cities, err := h.cityUsecase.ListCities(r.Context(), name, zipCode, page, size)
	if err != nil {
		if err == usecase.ErrInvalidPagination {
			response.BadRequest(w, "Invalid pagination parameters")
			return
		}
		response.InternalServerError(w, "Failed to get cities")
		return
	}

	response.Success(w, http.StatusOK, "Cities retrieved successfully", cities)
}
