package get_dashboard_stats

import (
	"net/http"

	"github.com/karimjl/DCB-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /stats/dashboard - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}
