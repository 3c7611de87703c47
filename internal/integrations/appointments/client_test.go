package appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/appointments", r.URL.Path)
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"patientId":5,"date":"2026-09-01T10:00:00Z","durationMinutes":30,"type":"consultation","status":"confirmed","createdAt":"2026-08-01T09:00:00Z","updatedAt":"2026-08-01T09:00:00Z"},
			{"id":2,"patientId":6,"date":"2026-09-01T11:00:00Z","durationMinutes":30,"type":"cleaning","status":"cancelled","createdAt":"2026-08-01T09:00:00Z","updatedAt":"2026-08-02T09:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	list, err := client.ListForDate(context.Background(), time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, "confirmed", list[0].Status)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), list[0].Date)
	// Inactive entries come through, filtering is the caller's job.
	assert.Equal(t, "cancelled", list[1].Status)
}

func TestCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/appointments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(5), req.PatientID)
		assert.Equal(t, "consultation", req.Type)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":42,"patientId":5,"date":"2026-09-01T10:00:00Z","durationMinutes":30,"type":"consultation","status":"pending","createdAt":"2026-08-29T09:00:00Z","updatedAt":"2026-08-29T09:00:00Z"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	created, err := client.Create(context.Background(), &CreateRequest{
		PatientID: 5,
		Date:      "2026-09-01T10:00:00Z",
		Type:      "consultation",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "pending", created.Status)
}

func TestCreate_ConflictKeepsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Ce créneau est déjà pris. Veuillez choisir un autre horaire."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Create(context.Background(), &CreateRequest{
		PatientID: 5,
		Date:      "2026-09-01T10:00:00Z",
		Type:      "consultation",
	})

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Contains(t, err.Error(), "Ce créneau est déjà pris")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/appointments/99/status", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"rendez-vous introuvable"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.UpdateStatus(context.Background(), 99, "confirmed")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/appointments/history", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{"data":[{"id":3,"patientId":5,"date":"2026-07-01T10:00:00Z","durationMinutes":30,"type":"control","status":"completed","createdAt":"2026-06-01T09:00:00Z","updatedAt":"2026-07-01T11:00:00Z"}],"totalPages":4}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	page, err := client.History(context.Background(), 2, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(4), page.TotalPages)
	require.Len(t, page.Appointments, 1)
	assert.Equal(t, "completed", page.Appointments[0].Status)
}

func TestServerErrorMapsToInternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"erreur interne du serveur"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListForDate(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestInvalidJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListForDate(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
