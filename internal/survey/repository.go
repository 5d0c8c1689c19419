package survey

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrNotFound is returned when a patient has no stored survey
var ErrNotFound = errors.New("survey not found")

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var _ RepositoryInterface = (*Repository)(nil)

const surveyColumns = "id, patient_id, symptoms, severity, pain_intensity, duration, limitation, comorbidities, timeframe, concerns, insurance_type, important_factors, diagnosis_detail, support_person, created_at, updated_at"

// UpsertSurvey stores a patient's intake survey, replacing any previous
// submission. The patient_id column carries a unique constraint.
func (r *Repository) UpsertSurvey(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error) {
	surveyID := uuid.New()
	now := time.Now()

	query := `
		INSERT INTO clinic.surveys
		(id, patient_id, symptoms, severity, pain_intensity, duration, limitation, comorbidities, timeframe, concerns, insurance_type, important_factors, diagnosis_detail, support_person, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (patient_id) DO UPDATE SET
			symptoms = EXCLUDED.symptoms,
			severity = EXCLUDED.severity,
			pain_intensity = EXCLUDED.pain_intensity,
			duration = EXCLUDED.duration,
			limitation = EXCLUDED.limitation,
			comorbidities = EXCLUDED.comorbidities,
			timeframe = EXCLUDED.timeframe,
			concerns = EXCLUDED.concerns,
			insurance_type = EXCLUDED.insurance_type,
			important_factors = EXCLUDED.important_factors,
			diagnosis_detail = EXCLUDED.diagnosis_detail,
			support_person = EXCLUDED.support_person,
			updated_at = $16
		RETURNING ` + surveyColumns

	row := r.db.QueryRowContext(ctx, query,
		surveyID,
		patientID,
		pq.Array(req.Symptoms),
		req.Severity,
		req.PainIntensity,
		req.Duration,
		req.Limitation,
		pq.Array(req.Comorbidities),
		req.Timeframe,
		pq.Array(req.Concerns),
		req.InsuranceType,
		pq.Array(req.ImportantFactors),
		req.DiagnosisDetail,
		req.SupportPerson,
		now,
		now,
	)

	survey, err := scanSurvey(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert survey: %w", err)
	}

	return survey, nil
}

func (r *Repository) GetSurveyByPatient(ctx context.Context, patientID string) (*SurveyResponse, error) {
	query := `
		SELECT ` + surveyColumns + `
		FROM clinic.surveys
		WHERE patient_id = $1
	`

	survey, err := scanSurvey(r.db.QueryRowContext(ctx, query, patientID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query survey: %w", err)
	}

	return survey, nil
}

// ListSurveys returns every stored survey, newest first. Used by the
// cohort overview.
func (r *Repository) ListSurveys(ctx context.Context) ([]SurveyResponse, error) {
	query := `
		SELECT ` + surveyColumns + `
		FROM clinic.surveys
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query surveys: %w", err)
	}
	defer rows.Close()

	var surveys []SurveyResponse
	for rows.Next() {
		survey, err := scanSurvey(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan survey: %w", err)
		}
		surveys = append(surveys, *survey)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating surveys: %w", err)
	}

	return surveys, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSurvey(row rowScanner) (*SurveyResponse, error) {
	var survey SurveyResponse
	var diagnosisDetail sql.NullString
	var supportPerson sql.NullString
	var insuranceType sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&survey.ID,
		&survey.PatientID,
		pq.Array(&survey.Symptoms),
		&survey.Severity,
		&survey.PainIntensity,
		&survey.Duration,
		&survey.Limitation,
		pq.Array(&survey.Comorbidities),
		&survey.Timeframe,
		pq.Array(&survey.Concerns),
		&insuranceType,
		pq.Array(&survey.ImportantFactors),
		&diagnosisDetail,
		&supportPerson,
		&survey.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if insuranceType.Valid {
		survey.InsuranceType = insuranceType.String
	}
	if diagnosisDetail.Valid {
		survey.DiagnosisDetail = diagnosisDetail.String
	}
	if supportPerson.Valid {
		survey.SupportPerson = supportPerson.String
	}
	if updatedAt.Valid {
		survey.UpdatedAt = &updatedAt.Time
	}

	return &survey, nil
}
