// Package analysis joins stored patients and surveys with the analyzer
// core and publishes the resulting events. It is the only package that
// invokes analyzer.BuildReport on live data.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/analyzer"
	"github.com/vidasalud-clinic/admission-service/internal/messaging"
	"github.com/vidasalud-clinic/admission-service/internal/patient"
	"github.com/vidasalud-clinic/admission-service/internal/survey"
	"github.com/vidasalud-clinic/admission-service/internal/telemetry"
)

// ErrSurveyNotCompleted is returned when analysis is requested for a
// patient who has not submitted an intake survey yet. Handlers map it
// to a distinct error code so the UI can prompt for the survey.
var ErrSurveyNotCompleted = errors.New("intake survey not completed")

// PatientGetter is the slice of the patient service the analyzer needs
type PatientGetter interface {
	GetPatient(ctx context.Context, id string) (*patient.PatientResponse, error)
}

// SurveyStore is the slice of the survey service the analyzer needs
type SurveyStore interface {
	GetSurvey(ctx context.Context, patientID string) (*survey.SurveyResponse, error)
	ListSurveys(ctx context.Context) ([]survey.SurveyResponse, error)
}

type Service struct {
	patients   PatientGetter
	surveys    SurveyStore
	publisher  messaging.PublisherInterface
	cache      *analyzer.Cache
	thresholds analyzer.Thresholds
	metrics    *telemetry.Metrics
}

// NewService creates the analysis service. Metrics may be nil when
// telemetry is disabled.
func NewService(patients PatientGetter, surveys SurveyStore, publisher messaging.PublisherInterface, cache *analyzer.Cache, thresholds analyzer.Thresholds, metrics *telemetry.Metrics) *Service {
	return &Service{
		patients:   patients,
		surveys:    surveys,
		publisher:  publisher,
		cache:      cache,
		thresholds: thresholds,
		metrics:    metrics,
	}
}

var _ ServiceInterface = (*Service)(nil)

// AnalyzePatient produces the full risk report for one patient.
// Results are memoized per survey revision and conversion probability;
// events fire only on a fresh computation.
func (s *Service) AnalyzePatient(ctx context.Context, patientID string, conversionProbability float64) (*analyzer.Report, error) {
	started := time.Now()

	p, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	sv, err := s.surveys.GetSurvey(ctx, patientID)
	if errors.Is(err, survey.ErrNotFound) {
		return nil, ErrSurveyNotCompleted
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load survey: %w", err)
	}

	key := cacheKey(patientID, sv, conversionProbability)
	if cached, ok := s.cache.Get(key); ok {
		s.recordAnalysis(ctx, cached, true, started)
		return cached, nil
	}

	record := &analyzer.PatientRecord{
		ID:                p.ID,
		FullName:          p.FullName,
		Age:               p.Age,
		ChronicConditions: p.ChronicConditions,
		HasPriorDiagnosis: p.HasPriorDiagnosis,
		DiagnosisDetail:   p.DiagnosisDetail,
	}

	report, err := analyzer.BuildReport(record, sv.ToIntake(), conversionProbability, s.thresholds)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	s.cache.Put(key, report)
	s.publishAnalysisEvents(ctx, report, sv.ID)
	s.recordAnalysis(ctx, report, false, started)

	return report, nil
}

// CohortOverview aggregates every stored survey into diagnosis groups
// and cohort-level insight sentences.
func (s *Service) CohortOverview(ctx context.Context) (*CohortOverviewResponse, error) {
	stored, err := s.surveys.ListSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}

	intakes := make([]*analyzer.IntakeSurvey, 0, len(stored))
	for i := range stored {
		intakes = append(intakes, stored[i].ToIntake())
	}

	groups := analyzer.GroupByProbableDiagnosis(intakes)
	counts := make(map[string]int, len(groups))
	for category, members := range groups {
		counts[category] = len(members)
	}

	return &CohortOverviewResponse{
		Success:         true,
		TotalSurveys:    len(stored),
		DiagnosisGroups: counts,
		Insights:        analyzer.GenerateCohortInsights(intakes, s.thresholds),
	}, nil
}

func (s *Service) publishAnalysisEvents(ctx context.Context, report *analyzer.Report, surveyID string) {
	analyzed := messaging.SurveyAnalyzedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventSurveyAnalyzed),
		Data: messaging.SurveyAnalyzedData{
			PatientID:         report.PatientID,
			SurveyID:          surveyID,
			RiskScore:         report.RiskScore,
			RiskBand:          string(report.RiskBand),
			ProbableDiagnosis: report.ProbableDiagnosis,
			AnalyzedAt:        time.Now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventSurveyAnalyzed, analyzed); err != nil {
		log.Printf("Warning: failed to publish survey.analyzed event for %s: %v", report.PatientID, err)
	}

	if !report.Priority {
		return
	}

	flagged := messaging.PatientFlaggedPriorityEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventPatientFlaggedPriority),
		Data: messaging.PatientFlaggedPriorityData{
			PatientID: report.PatientID,
			RiskScore: report.RiskScore,
			Threshold: s.thresholds.PriorityThreshold,
			FlaggedAt: time.Now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventPatientFlaggedPriority, flagged); err != nil {
		log.Printf("Warning: failed to publish patient.flagged_priority event for %s: %v", report.PatientID, err)
	}
}

func (s *Service) recordAnalysis(ctx context.Context, report *analyzer.Report, cacheHit bool, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordAnalysis(ctx, string(report.RiskBand), cacheHit, report.RiskScore, float64(time.Since(started).Milliseconds()))
}

// cacheKey identifies one analysis result: a survey revision for one
// patient at one conversion probability.
func cacheKey(patientID string, sv *survey.SurveyResponse, probability float64) string {
	revision := sv.CreatedAt
	if sv.UpdatedAt != nil {
		revision = *sv.UpdatedAt
	}
	return fmt.Sprintf("%s:%s:%d:%.3f", patientID, sv.ID, revision.UnixNano(), probability)
}
