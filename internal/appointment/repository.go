package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no appointment matches the given ID
var ErrNotFound = errors.New("appointment not found")

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var _ RepositoryInterface = (*Repository)(nil)

const appointmentColumns = "id, patient_id, appointment_type, scheduled_at, status, notes, created_at, updated_at"

func (r *Repository) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	appointmentID := uuid.New()
	createdAt := time.Now()

	query := `
		INSERT INTO clinic.appointments
		(id, patient_id, appointment_type, scheduled_at, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + appointmentColumns

	row := r.db.QueryRowContext(ctx, query,
		appointmentID,
		req.PatientID,
		req.AppointmentType,
		req.ScheduledAt,
		StatusScheduled,
		req.Notes,
		createdAt,
	)

	appointment, err := scanAppointment(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}

	return appointment, nil
}

func (r *Repository) GetAppointment(ctx context.Context, id string) (*AppointmentResponse, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM clinic.appointments
		WHERE id = $1
	`

	appointment, err := scanAppointment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query appointment: %w", err)
	}

	return appointment, nil
}

func (r *Repository) ListAppointments(ctx context.Context, patientID string) ([]AppointmentResponse, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM clinic.appointments
	`
	var args []interface{}
	if patientID != "" {
		query += " WHERE patient_id = $1"
		args = append(args, patientID)
	}
	query += " ORDER BY scheduled_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appointments []AppointmentResponse
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, *appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}

	return appointments, nil
}

func (r *Repository) UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
	var updates []string
	var args []interface{}
	argIndex := 1

	if req.AppointmentType != nil {
		updates = append(updates, fmt.Sprintf("appointment_type = $%d", argIndex))
		args = append(args, *req.AppointmentType)
		argIndex++
	}
	if req.ScheduledAt != nil {
		updates = append(updates, fmt.Sprintf("scheduled_at = $%d", argIndex))
		args = append(args, *req.ScheduledAt)
		argIndex++
	}
	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *req.Status)
		argIndex++
	}
	if req.Notes != nil {
		updates = append(updates, fmt.Sprintf("notes = $%d", argIndex))
		args = append(args, *req.Notes)
		argIndex++
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, time.Now())
	argIndex++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE clinic.appointments
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(updates, ", "), argIndex, appointmentColumns)

	appointment, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	return appointment, nil
}

func (r *Repository) CancelAppointment(ctx context.Context, id string) (*AppointmentResponse, error) {
	query := `
		UPDATE clinic.appointments
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + appointmentColumns

	appointment, err := scanAppointment(r.db.QueryRowContext(ctx, query, StatusCancelled, time.Now(), id, StatusScheduled))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	return appointment, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*AppointmentResponse, error) {
	var appointment AppointmentResponse
	var notes sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.AppointmentType,
		&appointment.ScheduledAt,
		&appointment.Status,
		&notes,
		&appointment.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		appointment.Notes = notes.String
	}
	if updatedAt.Valid {
		appointment.UpdatedAt = &updatedAt.Time
	}

	return &appointment, nil
}
