package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/vidasalud-clinic/admission-service/internal/analyzer"
	"github.com/vidasalud-clinic/admission-service/internal/patient"
)

// mockAnalysisService implements ServiceInterface with configurable function fields
type mockAnalysisService struct {
	analyzePatientFunc func(ctx context.Context, patientID string, conversionProbability float64) (*analyzer.Report, error)
	cohortOverviewFunc func(ctx context.Context) (*CohortOverviewResponse, error)
}

func (m *mockAnalysisService) AnalyzePatient(ctx context.Context, patientID string, conversionProbability float64) (*analyzer.Report, error) {
	return m.analyzePatientFunc(ctx, patientID, conversionProbability)
}

func (m *mockAnalysisService) CohortOverview(ctx context.Context) (*CohortOverviewResponse, error) {
	return m.cohortOverviewFunc(ctx)
}

// TestHandlerAnalyzePatient_Success tests the report payload
func TestHandlerAnalyzePatient_Success(t *testing.T) {
	service := &mockAnalysisService{
		analyzePatientFunc: func(ctx context.Context, patientID string, conversionProbability float64) (*analyzer.Report, error) {
			return &analyzer.Report{
				PatientID:             patientID,
				RiskScore:             55,
				RiskBand:              analyzer.BandHigh,
				Priority:              true,
				ConversionProbability: conversionProbability,
			}, nil
		},
	}
	handler := NewHandler(service, 0.5)

	req := httptest.NewRequest("GET", "/patients/patient-123/analysis?conversion_probability=0.8", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "patient-123"})
	rec := httptest.NewRecorder()

	handler.AnalyzePatient(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var resp AnalysisSuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Report == nil || resp.Report.RiskScore != 55 {
		t.Errorf("Unexpected report: %+v", resp.Report)
	}
	if resp.Report.ConversionProbability != 0.8 {
		t.Errorf("Expected probability 0.8, got %f", resp.Report.ConversionProbability)
	}
}

// TestHandlerAnalyzePatient_DefaultProbability tests the fallback value
func TestHandlerAnalyzePatient_DefaultProbability(t *testing.T) {
	var gotProbability float64
	service := &mockAnalysisService{
		analyzePatientFunc: func(ctx context.Context, patientID string, conversionProbability float64) (*analyzer.Report, error) {
			gotProbability = conversionProbability
			return &analyzer.Report{PatientID: patientID}, nil
		},
	}
	handler := NewHandler(service, 0.5)

	req := httptest.NewRequest("GET", "/patients/patient-123/analysis", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "patient-123"})
	rec := httptest.NewRecorder()

	handler.AnalyzePatient(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if gotProbability != 0.5 {
		t.Errorf("Expected default probability 0.5, got %f", gotProbability)
	}
}

// TestHandlerAnalyzePatient_InvalidProbability tests the 400 response
func TestHandlerAnalyzePatient_InvalidProbability(t *testing.T) {
	handler := NewHandler(&mockAnalysisService{}, 0.5)

	testCases := []string{"abc", "-0.1", "1.5"}
	for _, probStr := range testCases {
		req := httptest.NewRequest("GET", "/patients/patient-123/analysis?conversion_probability="+probStr, nil)
		req = mux.SetURLVars(req, map[string]string{"id": "patient-123"})
		rec := httptest.NewRecorder()

		handler.AnalyzePatient(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Probability %q: expected 400, got %d", probStr, rec.Code)
		}
	}
}

// TestHandlerAnalyzePatient_SurveyNotCompleted tests the distinct 404 code
func TestHandlerAnalyzePatient_SurveyNotCompleted(t *testing.T) {
	service := &mockAnalysisService{
		analyzePatientFunc: func(ctx context.Context, patientID string, conversionProbability float64) (*analyzer.Report, error) {
			return nil, ErrSurveyNotCompleted
		},
	}
	handler := NewHandler(service, 0.5)

	req := httptest.NewRequest("GET", "/patients/patient-123/analysis", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "patient-123"})
	rec := httptest.NewRecorder()

	handler.AnalyzePatient(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "survey_not_completed" {
		t.Errorf("Expected survey_not_completed, got %v", resp["error"])
	}
}

// TestHandlerAnalyzePatient_PatientNotFound tests the plain 404
func TestHandlerAnalyzePatient_PatientNotFound(t *testing.T) {
	service := &mockAnalysisService{
		analyzePatientFunc: func(ctx context.Context, patientID string, conversionProbability float64) (*analyzer.Report, error) {
			return nil, patient.ErrNotFound
		},
	}
	handler := NewHandler(service, 0.5)

	req := httptest.NewRequest("GET", "/patients/missing/analysis", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	rec := httptest.NewRecorder()

	handler.AnalyzePatient(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "not_found" {
		t.Errorf("Expected not_found, got %v", resp["error"])
	}
}

// TestHandlerCohortOverview_Success tests the overview payload
func TestHandlerCohortOverview_Success(t *testing.T) {
	service := &mockAnalysisService{
		cohortOverviewFunc: func(ctx context.Context) (*CohortOverviewResponse, error) {
			return &CohortOverviewResponse{
				Success:         true,
				TotalSurveys:    5,
				DiagnosisGroups: map[string]int{analyzer.CategoryHerniaInguinal: 3, analyzer.CategoryOther: 2},
				Insights:        []string{"Hernia Inguinal is the most common probable diagnosis (60% of surveys)."},
			}, nil
		},
	}
	handler := NewHandler(service, 0.5)

	req := httptest.NewRequest("GET", "/cohort/overview", nil)
	rec := httptest.NewRecorder()

	handler.CohortOverview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp CohortOverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.TotalSurveys != 5 || resp.DiagnosisGroups[analyzer.CategoryHerniaInguinal] != 3 {
		t.Errorf("Unexpected overview: %+v", resp)
	}
}
