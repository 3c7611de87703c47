package list_appointments

import (
	"net/http"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/api/handlers"
	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

const (
	msgMissingDate = "paramètre date manquant"
	msgInvalidDate = "format de date invalide, AAAA-MM-JJ attendu"
)

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

// Handle GET /api/v1/appointments?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// The date names a local calendar day
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListForDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Retrieved %d appointments for %s", len(result.Appointments), dateStr)
	handlers.RespondData(w, http.StatusOK, result.Appointments)
}
