package survey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/analyzer"
	"github.com/vidasalud-clinic/admission-service/internal/messaging"
	"github.com/vidasalud-clinic/admission-service/internal/testutil"
)

// mockRepository implements RepositoryInterface with configurable function fields
type mockRepository struct {
	upsertSurveyFunc       func(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error)
	getSurveyByPatientFunc func(ctx context.Context, patientID string) (*SurveyResponse, error)
	listSurveysFunc        func(ctx context.Context) ([]SurveyResponse, error)
}

func (m *mockRepository) UpsertSurvey(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error) {
	return m.upsertSurveyFunc(ctx, patientID, req)
}

func (m *mockRepository) GetSurveyByPatient(ctx context.Context, patientID string) (*SurveyResponse, error) {
	return m.getSurveyByPatientFunc(ctx, patientID)
}

func (m *mockRepository) ListSurveys(ctx context.Context) ([]SurveyResponse, error) {
	return m.listSurveysFunc(ctx)
}

// TestSubmitSurvey_Success tests storage plus the survey.submitted event
func TestSubmitSurvey_Success(t *testing.T) {
	mockRepo := &mockRepository{
		upsertSurveyFunc: func(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error) {
			return &SurveyResponse{
				ID:            "survey-1",
				PatientID:     patientID,
				Severity:      req.Severity,
				PainIntensity: req.PainIntensity,
				CreatedAt:     time.Now(),
			}, nil
		},
	}
	mockPub := testutil.NewMockPublisher()

	service := NewService(mockRepo, mockPub)

	survey, err := service.SubmitSurvey(context.Background(), "patient-123", SubmitSurveyRequest{
		Severity:      "severe",
		PainIntensity: 8,
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if survey.PatientID != "patient-123" {
		t.Errorf("Expected patient ID 'patient-123', got '%s'", survey.PatientID)
	}

	mockPub.AssertEventCount(t, messaging.EventSurveySubmitted, 1)
	event := mockPub.GetLastEventByKey(messaging.EventSurveySubmitted)
	submitted, ok := event.EventData.(messaging.SurveySubmittedEvent)
	if !ok {
		t.Fatalf("Expected SurveySubmittedEvent, got %T", event.EventData)
	}
	if submitted.Data.SurveyID != "survey-1" {
		t.Errorf("Expected survey ID 'survey-1', got '%s'", submitted.Data.SurveyID)
	}
}

// TestSubmitSurvey_PainBounds tests rejection of out-of-scale pain values
func TestSubmitSurvey_PainBounds(t *testing.T) {
	mockRepo := &mockRepository{}
	mockPub := testutil.NewMockPublisher()

	service := NewService(mockRepo, mockPub)

	testCases := []struct {
		name string
		pain int
	}{
		{"Negative pain", -1},
		{"Pain above scale", 11},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.SubmitSurvey(context.Background(), "patient-123", SubmitSurveyRequest{PainIntensity: tc.pain})
			if err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}

	mockPub.AssertEventNotPublished(t, messaging.EventSurveySubmitted)
}

// TestSubmitSurvey_MissingPatientID tests the required path parameter
func TestSubmitSurvey_MissingPatientID(t *testing.T) {
	service := NewService(&mockRepository{}, testutil.NewMockPublisher())

	_, err := service.SubmitSurvey(context.Background(), "", SubmitSurveyRequest{PainIntensity: 3})
	if err == nil {
		t.Error("Expected error for empty patient ID, got nil")
	}
}

// TestGetSurvey_NotFound tests the sentinel pass-through
func TestGetSurvey_NotFound(t *testing.T) {
	mockRepo := &mockRepository{
		getSurveyByPatientFunc: func(ctx context.Context, patientID string) (*SurveyResponse, error) {
			return nil, ErrNotFound
		},
	}

	service := NewService(mockRepo, testutil.NewMockPublisher())

	_, err := service.GetSurvey(context.Background(), "patient-123")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// TestToIntake_ParsesCodes tests boundary conversion into analyzer enums
func TestToIntake_ParsesCodes(t *testing.T) {
	stored := &SurveyResponse{
		ID:            "survey-1",
		PatientID:     "patient-123",
		Symptoms:      []string{analyzer.SymptomJaundice},
		Severity:      "severe",
		PainIntensity: 9,
		Duration:      "more_than_1_year",
		Limitation:    "moderate",
		Timeframe:     "urgent",
	}

	intake := stored.ToIntake()

	if intake.Severity != analyzer.SeveritySevere {
		t.Errorf("Expected severe, got %q", intake.Severity)
	}
	if intake.Duration != analyzer.DurationOverOneYear {
		t.Errorf("Expected more_than_1_year, got %q", intake.Duration)
	}
	if intake.Limitation != analyzer.LimitationModerate {
		t.Errorf("Expected moderate, got %q", intake.Limitation)
	}
	if intake.Timeframe != analyzer.TimeframeUrgent {
		t.Errorf("Expected urgent, got %q", intake.Timeframe)
	}
}

// TestToIntake_UnknownCodesDegrade tests that bad codes become Unknown
func TestToIntake_UnknownCodesDegrade(t *testing.T) {
	stored := &SurveyResponse{
		Severity:   "catastrophic",
		Duration:   "forever",
		Limitation: "total",
		Timeframe:  "yesterday",
	}

	intake := stored.ToIntake()

	if intake.Severity != analyzer.SeverityUnknown {
		t.Errorf("Expected unknown severity, got %q", intake.Severity)
	}
	if intake.Duration != analyzer.DurationUnknown {
		t.Errorf("Expected unknown duration, got %q", intake.Duration)
	}
	if intake.Limitation != analyzer.LimitationUnknown {
		t.Errorf("Expected unknown limitation, got %q", intake.Limitation)
	}
	if intake.Timeframe != analyzer.TimeframeUnknown {
		t.Errorf("Expected unknown timeframe, got %q", intake.Timeframe)
	}

	// Unknown codes carry zero weight in the risk index.
	score, err := analyzer.ComputeRiskIndex(&analyzer.PatientRecord{Age: 30}, intake)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected zero score for unknown codes, got %d", score)
	}
}
