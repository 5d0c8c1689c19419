package analysis

import (
	"context"

	"github.com/vidasalud-clinic/admission-service/internal/analyzer"
)

// ServiceInterface defines the contract for analysis operations
type ServiceInterface interface {
	AnalyzePatient(ctx context.Context, patientID string, conversionProbability float64) (*analyzer.Report, error)
	CohortOverview(ctx context.Context) (*CohortOverviewResponse, error)
}
