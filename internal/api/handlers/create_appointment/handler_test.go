package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/karimjl/DCB-AppointmentService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
	got  *createAppointment.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_CreatesAppointment(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:              42,
		PatientID:       5,
		StartsAt:        start,
		DurationMinutes: 30,
		Type:            "consultation",
		Status:          "pending",
		CreatedAt:       start.Add(-time.Hour),
		UpdatedAt:       start.Add(-time.Hour),
	}}

	rec := doRequest(t, uc, `{"patientId":5,"date":"2026-09-01T10:00:00Z","type":"consultation"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, start, uc.got.StartsAt)

	var envelope struct {
		Data AppointmentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, int64(42), envelope.Data.ID)
	assert.Equal(t, "pending", envelope.Data.Status)
	assert.Equal(t, "2026-09-01T10:00:00Z", envelope.Data.Date)
}

func TestHandle_SlotConflictReturns409(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrSlotConflict}

	rec := doRequest(t, uc, `{"patientId":5,"date":"2026-09-01T10:00:00Z","type":"consultation"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Ce créneau est déjà pris. Veuillez choisir un autre horaire.", envelope.Error)
}

func TestHandle_PastStartReturns400(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrStartInPast}

	rec := doRequest(t, uc, `{"patientId":5,"date":"2020-01-01T10:00:00Z","type":"consultation"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBodyReturns400(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{},
		`{"patientId":5,"date":"2026-09-01T10:00:00Z","type":"consultation","rogue":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateReturns400(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, uc, `{"patientId":5,"date":"tomorrow","type":"consultation"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_InternalErrorReturns500(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrInternal}

	rec := doRequest(t, uc, `{"patientId":5,"date":"2026-09-01T10:00:00Z","type":"consultation"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "erreur interne du serveur", envelope.Error)
}
