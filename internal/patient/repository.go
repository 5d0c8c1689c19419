package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/vidasalud-clinic/admission-service/internal/pagination"
)

// ErrNotFound is returned when no active patient matches the given ID
var ErrNotFound = errors.New("patient not found")

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var _ RepositoryInterface = (*Repository)(nil)

const patientColumns = "id, full_name, email, phone_number, age, chronic_conditions, has_prior_diagnosis, diagnosis_detail, is_active, created_at, updated_at"

func (r *Repository) CreatePatient(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error) {
	patientID := uuid.New()
	createdAt := time.Now()

	query := `
		INSERT INTO clinic.patients
		(id, full_name, email, phone_number, age, chronic_conditions, has_prior_diagnosis, diagnosis_detail, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, $9)
		RETURNING ` + patientColumns

	row := r.db.QueryRowContext(ctx, query,
		patientID,
		req.FullName,
		req.Email,
		req.PhoneNumber,
		req.Age,
		pq.Array(req.ChronicConditions),
		req.HasPriorDiagnosis,
		req.DiagnosisDetail,
		createdAt,
	)

	patient, err := scanPatient(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert patient: %w", err)
	}

	return patient, nil
}

func (r *Repository) GetPatient(ctx context.Context, id string) (*PatientResponse, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM clinic.patients
		WHERE id = $1 AND deleted_at IS NULL
	`

	patient, err := scanPatient(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query patient: %w", err)
	}

	return patient, nil
}

// ListPatients returns one page of patients plus the total record count.
// A non-empty search filters on name and email, case-insensitively.
func (r *Repository) ListPatients(ctx context.Context, params pagination.Params) ([]PatientResponse, int, error) {
	params.Validate()

	where := "deleted_at IS NULL"
	var args []interface{}
	argIndex := 1

	if params.Search != "" {
		where += fmt.Sprintf(" AND (full_name ILIKE $%d OR email ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	countQuery := "SELECT COUNT(*) FROM clinic.patients WHERE " + where
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM clinic.patients
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, patientColumns, where, argIndex, argIndex+1)
	args = append(args, params.Limit, params.CalculateOffset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query patients: %w", err)
	}
	defer rows.Close()

	var patients []PatientResponse
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, *patient)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, total, nil
}

func (r *Repository) UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error) {
	var updates []string
	var args []interface{}
	argIndex := 1

	if req.FullName != nil {
		updates = append(updates, fmt.Sprintf("full_name = $%d", argIndex))
		args = append(args, *req.FullName)
		argIndex++
	}
	if req.Email != nil {
		updates = append(updates, fmt.Sprintf("email = $%d", argIndex))
		args = append(args, *req.Email)
		argIndex++
	}
	if req.PhoneNumber != nil {
		updates = append(updates, fmt.Sprintf("phone_number = $%d", argIndex))
		args = append(args, *req.PhoneNumber)
		argIndex++
	}
	if req.Age != nil {
		updates = append(updates, fmt.Sprintf("age = $%d", argIndex))
		args = append(args, *req.Age)
		argIndex++
	}
	if req.ChronicConditions != nil {
		updates = append(updates, fmt.Sprintf("chronic_conditions = $%d", argIndex))
		args = append(args, pq.Array(*req.ChronicConditions))
		argIndex++
	}
	if req.HasPriorDiagnosis != nil {
		updates = append(updates, fmt.Sprintf("has_prior_diagnosis = $%d", argIndex))
		args = append(args, *req.HasPriorDiagnosis)
		argIndex++
	}
	if req.DiagnosisDetail != nil {
		updates = append(updates, fmt.Sprintf("diagnosis_detail = $%d", argIndex))
		args = append(args, *req.DiagnosisDetail)
		argIndex++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIndex))
		args = append(args, *req.IsActive)
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
		UPDATE clinic.patients
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING %s
	`, strings.Join(updates, ", "), argIndex, patientColumns)

	patient, err := scanPatient(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	return patient, nil
}

func (r *Repository) DeletePatient(ctx context.Context, id string) error {
	query := `
		UPDATE clinic.patients
		SET deleted_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*PatientResponse, error) {
	var patient PatientResponse
	var email sql.NullString
	var phoneNumber sql.NullString
	var diagnosisDetail sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&patient.ID,
		&patient.FullName,
		&email,
		&phoneNumber,
		&patient.Age,
		pq.Array(&patient.ChronicConditions),
		&patient.HasPriorDiagnosis,
		&diagnosisDetail,
		&patient.IsActive,
		&patient.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		patient.Email = email.String
	}
	if phoneNumber.Valid {
		patient.PhoneNumber = phoneNumber.String
	}
	if diagnosisDetail.Valid {
		patient.DiagnosisDetail = diagnosisDetail.String
	}
	if updatedAt.Valid {
		patient.UpdatedAt = &updatedAt.Time
	}

	return &patient, nil
}
