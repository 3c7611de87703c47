package get_history

import (
	"net/http"
	"strconv"

	"github.com/karimjl/DCB-AppointmentService/internal/api/handlers"
)

const msgInvalidParams = "paramètres de pagination invalides"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/history?page=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		h.logger.Warn("GET /appointments/history - Invalid page parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.logger.Warn("GET /appointments/history - Invalid limit parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.History(r.Context(), page, limit)
	if err != nil {
		h.logger.Error("GET /appointments/history - Failed to fetch history: page=%d, error=%v", page, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/history - Retrieved page=%d, count=%d", page, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, &HistoryResponse{
		Data:       result.Appointments,
		TotalPages: result.TotalPages,
	})
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
