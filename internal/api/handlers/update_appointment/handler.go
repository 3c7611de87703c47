package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/karimjl/DCB-AppointmentService/internal/api/handlers"
	updateAppointment "github.com/karimjl/DCB-AppointmentService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "identifiant de rendez-vous invalide"
	msgInvalidRequestBody   = "corps de requête invalide"
	msgInvalidDateOrType    = "date ou type de rendez-vous invalide"
	msgNotFound             = "rendez-vous introuvable"
	msgNotEditable          = "ce rendez-vous ne peut plus être modifié"
	msgSlotConflict         = "Ce créneau est déjà pris. Veuillez choisir un autre horaire."
	msgStartInPast          = "la date du rendez-vous doit être dans le futur"
	msgInvalidInput         = "données de rendez-vous invalides"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrType)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrSlotConflict):
			h.logger.Warn("PUT /appointments/{id} - Slot conflict: appointment_id=%d, date=%s",
				appointmentID, req.Date)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrNotEditable):
			h.logger.Warn("PUT /appointments/{id} - Not editable: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgNotEditable)

		case errors.Is(err, updateAppointment.ErrStartInPast):
			h.logger.Warn("PUT /appointments/{id} - Start in past: appointment_id=%d, date=%s",
				appointmentID, req.Date)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated: appointment_id=%d", result.ID)
	handlers.RespondData(w, http.StatusOK, FromUseCaseResponse(result))
}
