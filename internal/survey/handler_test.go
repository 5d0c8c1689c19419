package survey

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// mockService implements ServiceInterface with configurable function fields
type mockService struct {
	submitSurveyFunc func(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error)
	getSurveyFunc    func(ctx context.Context, patientID string) (*SurveyResponse, error)
	listSurveysFunc  func(ctx context.Context) ([]SurveyResponse, error)
}

func (m *mockService) SubmitSurvey(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error) {
	return m.submitSurveyFunc(ctx, patientID, req)
}

func (m *mockService) GetSurvey(ctx context.Context, patientID string) (*SurveyResponse, error) {
	return m.getSurveyFunc(ctx, patientID)
}

func (m *mockService) ListSurveys(ctx context.Context) ([]SurveyResponse, error) {
	return m.listSurveysFunc(ctx)
}

// TestHandlerSubmitSurvey_Success tests the happy path
func TestHandlerSubmitSurvey_Success(t *testing.T) {
	service := &mockService{
		submitSurveyFunc: func(ctx context.Context, patientID string, req SubmitSurveyRequest) (*SurveyResponse, error) {
			return &SurveyResponse{ID: "survey-1", PatientID: patientID, Severity: req.Severity}, nil
		},
	}
	handler := NewHandler(service)

	body, _ := json.Marshal(SubmitSurveyRequest{Severity: "moderate", PainIntensity: 4})
	req := httptest.NewRequest("PUT", "/patients/patient-123/survey", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "patient-123"})
	rec := httptest.NewRecorder()

	handler.SubmitSurvey(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var resp SurveySuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || resp.Survey == nil || resp.Survey.PatientID != "patient-123" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

// TestHandlerSubmitSurvey_InvalidPain tests the 400 on out-of-scale pain
func TestHandlerSubmitSurvey_InvalidPain(t *testing.T) {
	handler := NewHandler(&mockService{})

	body, _ := json.Marshal(SubmitSurveyRequest{PainIntensity: 15})
	req := httptest.NewRequest("PUT", "/patients/patient-123/survey", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "patient-123"})
	rec := httptest.NewRecorder()

	handler.SubmitSurvey(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

// TestHandlerGetSurvey_NotFound tests the 404 response
func TestHandlerGetSurvey_NotFound(t *testing.T) {
	service := &mockService{
		getSurveyFunc: func(ctx context.Context, patientID string) (*SurveyResponse, error) {
			return nil, ErrNotFound
		},
	}
	handler := NewHandler(service)

	req := httptest.NewRequest("GET", "/patients/patient-123/survey", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "patient-123"})
	rec := httptest.NewRecorder()

	handler.GetSurvey(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "not_found" {
		t.Errorf("Expected not_found, got %v", resp["error"])
	}
}
