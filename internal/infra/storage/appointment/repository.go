package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	"github.com/karimjl/DCB-AppointmentService/pkg/dbmetrics"
	"github.com/karimjl/DCB-AppointmentService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"patient_id",
	"starts_at",
	"duration_minutes",
	"type",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository persists appointments in PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment and returns it with the assigned id.
// When the context carries an open transaction (see pkg/dbmetrics) the insert
// runs inside it; the create use case relies on that to pair the insert with
// the conflict check under one serializable transaction.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"patient_id",
			"starts_at",
			"duration_minutes",
			"type",
			"status",
			"notes",
		).
		Values(
			appt.PatientID,
			appt.StartsAt,
			appt.DurationMinutes,
			appt.Type,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID fetches an appointment by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListWithFilter fetches appointments matching the filter, ordered by start
// time. Inside a transaction a single-day range query locks the matched rows
// with FOR UPDATE, which is what the booking use cases need to make the
// conflict check authoritative.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"starts_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"starts_at": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("starts_at ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListPage fetches one page of the appointment history (newest first) along
// with the total row count, for the paginated history screen
func (r *Repository) ListPage(ctx context.Context, limit, offset uint64) ([]*domain.Appointment, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListPage - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListPage - scan count: %v", ErrScanRow, err)
	}

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("starts_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListPage - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListPage - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appts, err := scanAppointments(rows)
	if err != nil {
		return nil, 0, err
	}

	return appts, total, nil
}

// Update rewrites the mutable fields of an appointment. The id never changes.
func (r *Repository) Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("patient_id", appt.PatientID).
		Set("starts_at", appt.StartsAt).
		Set("duration_minutes", appt.DurationMinutes).
		Set("type", appt.Type).
		Set("notes", appt.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appt.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// UpdateStatus sets the status of an appointment
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.PatientID,
		&appt.StartsAt,
		&appt.DurationMinutes,
		&appt.Type,
		&appt.Status,
		&appt.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
