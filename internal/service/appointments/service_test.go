package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	appointmentRepo "github.com/karimjl/DCB-AppointmentService/internal/infra/storage/appointment"
)

type fakeRepo struct {
	appts      []*domain.Appointment
	total      int64
	gotFilter  domain.AppointmentsFilter
	gotLimit   uint64
	gotOffset  uint64
	byIDResult *domain.Appointment
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.byIDResult == nil {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return f.byIDResult, nil
}

func (f *fakeRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = filter
	return f.appts, nil
}

func (f *fakeRepo) ListPage(ctx context.Context, limit, offset uint64) ([]*domain.Appointment, int64, error) {
	f.gotLimit = limit
	f.gotOffset = offset
	return f.appts, f.total, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListForDate_UsesDayBoundsAndIncludesInactive(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	date := time.Date(2026, 9, 1, 14, 30, 0, 0, loc)

	_, err = svc.ListForDate(context.Background(), date)
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.From)
	require.NotNil(t, repo.gotFilter.To)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, loc), *repo.gotFilter.From)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, loc), *repo.gotFilter.To)
	// The day view also shows cancelled and completed visits.
	assert.True(t, repo.gotFilter.IncludeInactive)
}

func TestHistory_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		wantLimit  uint64
		wantOffset uint64
		wantPages  int64
	}{
		{"first page", 1, 10, 35, 10, 0, 4},
		{"third page", 3, 10, 35, 10, 20, 4},
		{"exact division", 1, 10, 30, 10, 0, 3},
		{"defaults applied", 0, 0, 45, defaultHistoryLimit, 0, 3},
		{"empty history", 1, 10, 0, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{total: tt.total}
			svc := NewService(repo, nopLogger{})

			resp, err := svc.History(context.Background(), tt.page, tt.limit)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLimit, repo.gotLimit)
			assert.Equal(t, tt.wantOffset, repo.gotOffset)
			assert.Equal(t, tt.wantPages, resp.TotalPages)
		})
	}
}
