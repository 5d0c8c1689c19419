package telemetry

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all custom metrics for the service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal metric.Int64Counter
	HTTPDurationMs    metric.Float64Histogram

	// Business metrics
	PatientTotal     metric.Int64Counter
	SurveyTotal      metric.Int64Counter
	AppointmentTotal metric.Int64Counter

	// Analysis metrics
	AnalysisTotal      metric.Int64Counter
	AnalysisDurationMs metric.Float64Histogram
	RiskScoreHistogram metric.Int64Histogram
}

// InitMetrics initializes all custom metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/vidasalud-clinic/admission-service")

	httpRequestsTotal, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	httpDurationMs, err := meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	patientTotal, err := meter.Int64Counter(
		"patient_total",
		metric.WithDescription("Total number of patient operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	surveyTotal, err := meter.Int64Counter(
		"survey_total",
		metric.WithDescription("Total number of intake survey operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	appointmentTotal, err := meter.Int64Counter(
		"appointment_total",
		metric.WithDescription("Total number of appointment operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	analysisTotal, err := meter.Int64Counter(
		"analysis_total",
		metric.WithDescription("Total number of risk analyses performed"),
		metric.WithUnit("{analysis}"),
	)
	if err != nil {
		return nil, err
	}

	analysisDurationMs, err := meter.Float64Histogram(
		"analysis_duration_milliseconds",
		metric.WithDescription("Risk analysis duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	riskScoreHistogram, err := meter.Int64Histogram(
		"risk_score",
		metric.WithDescription("Distribution of computed risk scores"),
		metric.WithUnit("{score}"),
	)
	if err != nil {
		return nil, err
	}

	log.Println("✓ Custom metrics initialized")

	return &Metrics{
		HTTPRequestsTotal:  httpRequestsTotal,
		HTTPDurationMs:     httpDurationMs,
		PatientTotal:       patientTotal,
		SurveyTotal:        surveyTotal,
		AppointmentTotal:   appointmentTotal,
		AnalysisTotal:      analysisTotal,
		AnalysisDurationMs: analysisDurationMs,
		RiskScoreHistogram: riskScoreHistogram,
	}, nil
}

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	}

	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.HTTPDurationMs.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

// RecordPatientOperation records a patient operation metric
func (m *Metrics) RecordPatientOperation(ctx context.Context, operation string) {
	m.PatientTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordSurveyOperation records an intake survey operation metric
func (m *Metrics) RecordSurveyOperation(ctx context.Context, operation string) {
	m.SurveyTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordAppointmentOperation records an appointment operation metric
func (m *Metrics) RecordAppointmentOperation(ctx context.Context, operation string) {
	m.AppointmentTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordAnalysis records one completed risk analysis
func (m *Metrics) RecordAnalysis(ctx context.Context, riskBand string, cacheHit bool, riskScore int, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("risk_band", riskBand),
		attribute.Bool("cache_hit", cacheHit),
	}

	m.AnalysisTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.AnalysisDurationMs.Record(ctx, durationMs, metric.WithAttributes(attrs...))
	m.RiskScoreHistogram.Record(ctx, int64(riskScore), metric.WithAttributes(
		attribute.String("risk_band", riskBand),
	))
}
