package survey

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/messaging"
)

// Pain intensity bounds on the questionnaire's 0-10 scale
const (
	MinPainIntensity = 0
	MaxPainIntensity = 10
)

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface) *Service {
	return &Service{repo: repo, publisher: publisher}
}

var _ ServiceInterface = (*Service)(nil)

// SubmitSurvey validates and stores a patient's intake survey, then
// publishes survey.submitted. Resubmission replaces the previous survey.
func (s *Service) SubmitSurvey(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error) {
	if patientID == "" {
		return nil, fmt.Errorf("patient ID is required")
	}
	if req.PainIntensity < MinPainIntensity || req.PainIntensity > MaxPainIntensity {
		return nil, fmt.Errorf("pain intensity must be between %d and %d", MinPainIntensity, MaxPainIntensity)
	}

	survey, err := s.repo.UpsertSurvey(ctx, patientID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to store survey: %w", err)
	}

	event := messaging.SurveySubmittedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventSurveySubmitted),
		Data: messaging.SurveySubmittedData{
			SurveyID:    survey.ID,
			PatientID:   survey.PatientID,
			Severity:    survey.Severity,
			SubmittedAt: time.Now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventSurveySubmitted, event); err != nil {
		log.Printf("Warning: failed to publish survey.submitted event for patient %s: %v", patientID, err)
	}

	return survey, nil
}

func (s *Service) GetSurvey(ctx context.Context, patientID string) (*SurveyResponse, error) {
	survey, err := s.repo.GetSurveyByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return survey, nil
}

func (s *Service) ListSurveys(ctx context.Context) ([]SurveyResponse, error) {
	surveys, err := s.repo.ListSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	return surveys, nil
}
