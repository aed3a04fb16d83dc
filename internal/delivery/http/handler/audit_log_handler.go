package handler

import (
	"net/http"

	"doctor-provider/internal/usecase"
	"doctor-provider/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, size, ok := parsePagination(r)
	if !ok {
		response.BadRequest(w, "Invalid pagination parameters")
		return
	}

	action := r.URL.Query().Get("action")

	auditLogs, err := h.auditLogUsecase.ListAuditLogs(r.Context(), action, page, size)
	if err != nil {
		if err == usecase.ErrInvalidPagination {
			response.BadRequest(w, "Invalid pagination parameters")
			return
		}
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs)
}
