package create_appointment

import (
	"errors"
	"net/http"

	"github.com/karimjl/DCB-AppointmentService/internal/api/handlers"
	createAppointment "github.com/karimjl/DCB-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidDateOrType  = "date ou type de rendez-vous invalide"
	msgSlotConflict       = "Ce créneau est déjà pris. Veuillez choisir un autre horaire."
	msgStartInPast        = "la date du rendez-vous doit être dans le futur"
	msgInvalidInput       = "données de rendez-vous invalides"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrType)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: patient_id=%d, date=%s", req.PatientID, req.Date)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrStartInPast):
			h.logger.Warn("POST /appointments - Start in past: patient_id=%d, date=%s", req.PatientID, req.Date)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: patient_id=%d, error=%v",
				req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, patient_id=%d",
		result.ID, req.PatientID)
	handlers.RespondData(w, http.StatusCreated, FromUseCaseResponse(result))
}
