package analysis

import "github.com/vidasalud-clinic/admission-service/internal/analyzer"

// AnalysisSuccessResponse wraps a risk report for HTTP clients
type AnalysisSuccessResponse struct {
	Success bool             `json:"success"`
	Report  *analyzer.Report `json:"report"`
}

// CohortOverviewResponse is the aggregated view over all stored surveys
type CohortOverviewResponse struct {
	Success         bool           `json:"success"`
	TotalSurveys    int            `json:"total_surveys"`
	DiagnosisGroups map[string]int `json:"diagnosis_groups"`
	Insights        []string       `json:"insights"`
}
