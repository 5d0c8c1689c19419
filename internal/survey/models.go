// Package survey stores and serves each patient's pre-consultation
// intake questionnaire. Raw answer codes are kept as submitted;
// conversion into the analyzer's closed enumerations happens in
// ToIntake at the read boundary.
package survey

import (
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/analyzer"
)

// SubmitSurveyRequest represents an intake survey submission. Each
// patient has at most one current survey; resubmitting replaces it.
type SubmitSurveyRequest struct {
	Symptoms         []string `json:"symptoms"`
	Severity         string   `json:"severity"`
	PainIntensity    int      `json:"pain_intensity"`
	Duration         string   `json:"duration"`
	Limitation       string   `json:"limitation"`
	Comorbidities    []string `json:"comorbidities"`
	Timeframe        string   `json:"timeframe"`
	Concerns         []string `json:"concerns"`
	InsuranceType    string   `json:"insurance_type"`
	ImportantFactors []string `json:"important_factors"`
	DiagnosisDetail  string   `json:"diagnosis_detail"`
	SupportPerson    string   `json:"support_person"`
}

// SurveyResponse represents the stored survey returned to clients
type SurveyResponse struct {
	ID               string     `json:"id"`
	PatientID        string     `json:"patient_id"`
	Symptoms         []string   `json:"symptoms"`
	Severity         string     `json:"severity"`
	PainIntensity    int        `json:"pain_intensity"`
	Duration         string     `json:"duration"`
	Limitation       string     `json:"limitation"`
	Comorbidities    []string   `json:"comorbidities"`
	Timeframe        string     `json:"timeframe"`
	Concerns         []string   `json:"concerns"`
	InsuranceType    string     `json:"insurance_type"`
	ImportantFactors []string   `json:"important_factors"`
	DiagnosisDetail  string     `json:"diagnosis_detail"`
	SupportPerson    string     `json:"support_person"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// ToIntake converts the stored survey into the analyzer's canonical
// shape. Unrecognized codes become the Unknown enum member and
// contribute nothing to scoring.
func (s *SurveyResponse) ToIntake() *analyzer.IntakeSurvey {
	return &analyzer.IntakeSurvey{
		ID:               s.ID,
		PatientID:        s.PatientID,
		Symptoms:         s.Symptoms,
		Severity:         analyzer.ParseSeverity(s.Severity),
		PainIntensity:    s.PainIntensity,
		Duration:         analyzer.ParseDuration(s.Duration),
		Limitation:       analyzer.ParseLimitation(s.Limitation),
		Comorbidities:    s.Comorbidities,
		Timeframe:        analyzer.ParseTimeframe(s.Timeframe),
		Concerns:         s.Concerns,
		InsuranceType:    s.InsuranceType,
		ImportantFactors: s.ImportantFactors,
		DiagnosisDetail:  s.DiagnosisDetail,
		SupportPerson:    s.SupportPerson,
	}
}
