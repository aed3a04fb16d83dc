package handler

import (
	"context"
	"net/http"
	"time"

	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
	"doctor-provider/internal/usecase"
	"doctor-provider/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const slotDateLayout = "2006-01-02"

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
	}
}

func (h *SlotHandler) GetAllSlots(w http.ResponseWriter, r *http.Request) {
	page, size, ok := parsePagination(r)
	if !ok {
		response.BadRequest(w, "Invalid pagination parameters")
		return
	}

	filter := &entity.SlotFilter{}
	if raw := r.URL.Query().Get("doctor_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid doctor ID")
			return
		}
		filter.DoctorID = &parsed
	}
	if raw := r.URL.Query().Get("working_hours_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid working hours ID")
			return
		}
		filter.WorkingHoursID = &parsed
	}
	if raw := r.URL.Query().Get("date_from"); raw != "" {
		parsed, err := time.Parse(slotDateLayout, raw)
		if err != nil {
			response.BadRequest(w, "Invalid date_from, use YYYY-MM-DD")
			return
		}
		filter.DateFrom = &parsed
	}
	if raw := r.URL.Query().Get("date_to"); raw != "" {
		parsed, err := time.Parse(slotDateLayout, raw)
		if err != nil {
			response.BadRequest(w, "Invalid date_to, use YYYY-MM-DD")
			return
		}
		filter.DateTo = &parsed
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := entity.SlotStatusFromValue(raw)
		if err != nil {
			response.BadRequest(w, "Invalid status, use available, booked or blocked")
			return
		}
		filter.Status = &status
	}

	slots, err := h.slotUsecase.ListSlots(r.Context(), filter, page, size)
	if err != nil {
		if err == usecase.ErrInvalidPagination {
			response.BadRequest(w, "Invalid pagination parameters")
			return
		}
		response.InternalServerError(w, "Failed to get slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *SlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	slot, err := h.slotUsecase.GetSlot(r.Context(), slotID)
	if err != nil {
		if err == usecase.ErrSlotNotFound {
			response.NotFound(w, "Slot not found")
			return
		}
		response.InternalServerError(w, "Failed to get slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot retrieved successfully", slot)
}

func (h *SlotHandler) BlockSlot(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.slotUsecase.BlockSlot, "Slot blocked successfully", "Failed to block slot")
}

func (h *SlotHandler) UnblockSlot(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.slotUsecase.UnblockSlot, "Slot unblocked successfully", "Failed to unblock slot")
}

func (h *SlotHandler) BookSlot(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.slotUsecase.BookSlot, "Slot booked successfully", "Failed to book slot")
}

func (h *SlotHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) (*dto.SlotResponse, error), successMsg, failMsg string) {
	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	slot, err := op(r.Context(), slotID)
	if err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case entity.ErrInvalidSlotTransition:
			response.Conflict(w, "Slot is not in a state that allows this transition")
		default:
			response.InternalServerError(w, failMsg)
		}
		return
	}

	response.Success(w, http.StatusOK, successMsg, slot)
}
