package survey

import "context"

// RepositoryInterface defines the contract for survey persistence
type RepositoryInterface interface {
	UpsertSurvey(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error)
	GetSurveyByPatient(ctx context.Context, patientID string) (*SurveyResponse, error)
	ListSurveys(ctx context.Context) ([]SurveyResponse, error)
}
