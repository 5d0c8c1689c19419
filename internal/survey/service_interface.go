package survey

import "context"

// ServiceInterface defines the contract for survey business logic operations
type ServiceInterface interface {
	SubmitSurvey(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error)
	GetSurvey(ctx context.Context, patientID string) (*SurveyResponse, error)
	ListSurveys(ctx context.Context) ([]SurveyResponse, error)
}
