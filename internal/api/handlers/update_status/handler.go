package update_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/karimjl/DCB-AppointmentService/internal/api/handlers"
	updateStatus "github.com/karimjl/DCB-AppointmentService/internal/usecase/update_status"
)

const (
	msgInvalidAppointmentID = "identifiant de rendez-vous invalide"
	msgInvalidRequestBody   = "corps de requête invalide"
	msgNotFound             = "rendez-vous introuvable"
	msgInvalidStatus        = "statut de rendez-vous invalide"
	msgInvalidTransition    = "changement de statut non autorisé"
)

type Handler struct {
	useCase UpdateStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateStatus.Request{
		ID:     appointmentID,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/status - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateStatus.ErrInvalidTransition):
			h.logger.Warn("PUT /appointments/{id}/status - Illegal transition: appointment_id=%d, status=%s",
				appointmentID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id}/status - Invalid status: appointment_id=%d, status=%s",
				appointmentID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /appointments/{id}/status - Failed to update status: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id}/status - Status updated: appointment_id=%d, status=%s",
		appointmentID, result.Status)
	handlers.RespondData(w, http.StatusOK, FromUseCaseResponse(result))
}
