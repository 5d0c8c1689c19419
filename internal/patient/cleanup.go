package patient

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// RetentionPeriod defines how long soft-deleted patient records are
// retained before permanent removal (5 years, per medical records policy)
const RetentionPeriod = 5 * 365 * 24 * time.Hour

// CleanupService handles permanent deletion of expired soft-deleted patients
type CleanupService struct {
	db *sql.DB
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(db *sql.DB) *CleanupService {
	return &CleanupService{db: db}
}

// GetExpiredPatientsCount returns count of patients eligible for cleanup
func (s *CleanupService) GetExpiredPatientsCount(ctx context.Context) (int, error) {
	cutoffDate := time.Now().Add(-RetentionPeriod)

	var count int
	query := `
		SELECT COUNT(*)
		FROM clinic.patients
		WHERE deleted_at IS NOT NULL
		AND deleted_at < $1
	`

	err := s.db.QueryRowContext(ctx, query, cutoffDate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expired patients: %w", err)
	}

	return count, nil
}

// CleanupExpiredPatients permanently deletes patients that have been
// soft-deleted for longer than the retention period, along with their
// surveys and appointments
func (s *CleanupService) CleanupExpiredPatients(ctx context.Context) (int, error) {
	cutoffDate := time.Now().Add(-RetentionPeriod)
	log.Printf("Starting cleanup of patients deleted before %s", cutoffDate.Format(time.RFC3339))

	query := `
		SELECT id
		FROM clinic.patients
		WHERE deleted_at IS NOT NULL
		AND deleted_at < $1
		ORDER BY deleted_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired patients: %w", err)
	}
	defer rows.Close()

	var expiredIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to scan patient: %w", err)
		}
		expiredIDs = append(expiredIDs, id)
	}

	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating patients: %w", err)
	}

	if len(expiredIDs) == 0 {
		log.Println("No expired patients found for cleanup")
		return 0, nil
	}

	log.Printf("Found %d patients to permanently delete", len(expiredIDs))

	deletedCount := 0
	for _, id := range expiredIDs {
		if err := s.permanentlyDeletePatient(ctx, id); err != nil {
			log.Printf("Failed to delete patient %s: %v", id, err)
			continue
		}
		deletedCount++
	}

	log.Printf("Successfully cleaned up %d/%d expired patients", deletedCount, len(expiredIDs))
	return deletedCount, nil
}

// permanentlyDeletePatient hard-deletes one patient and all dependent rows
func (s *CleanupService) permanentlyDeletePatient(ctx context.Context, patientID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM clinic.surveys WHERE patient_id = $1`, patientID); err != nil {
		return fmt.Errorf("failed to delete patient surveys: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM clinic.appointments WHERE patient_id = $1`, patientID); err != nil {
		return fmt.Errorf("failed to delete patient appointments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		DELETE FROM clinic.patients
		WHERE id = $1 AND deleted_at IS NOT NULL
	`, patientID)
	if err != nil {
		return fmt.Errorf("failed to delete patient record: %w", err)
	}

	rowCount, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowCount == 0 {
		return fmt.Errorf("patient not found or not soft-deleted")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Permanently deleted patient %s and dependent records", patientID)
	return nil
}
