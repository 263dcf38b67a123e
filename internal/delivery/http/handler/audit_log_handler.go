package handler

import (
	"net/http"
	"strconv"

	"wellness-clinic-service/internal/converter"
	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/service"
	"wellness-clinic-service/pkg/response"
)

const defaultAuditLimit = 50

type AuditLogHandler struct {
	auditService service.AuditService
}

func NewAuditLogHandler(auditService service.AuditService) *AuditLogHandler {
	return &AuditLogHandler{
		auditService: auditService,
	}
}

func (h *AuditLogHandler) GetRecentLogs(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	logs, err := h.auditService.Recent(r.Context(), limit)
	if err != nil {
		response.FromError(w, err)
		return
	}

	result := &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}
	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", result)
}
