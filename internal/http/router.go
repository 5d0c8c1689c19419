package http

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/vidasalud-clinic/admission-service/internal/analysis"
	"github.com/vidasalud-clinic/admission-service/internal/analyzer"
	"github.com/vidasalud-clinic/admission-service/internal/appointment"
	"github.com/vidasalud-clinic/admission-service/internal/config"
	"github.com/vidasalud-clinic/admission-service/internal/messaging"
	"github.com/vidasalud-clinic/admission-service/internal/patient"
	"github.com/vidasalud-clinic/admission-service/internal/survey"
	"github.com/vidasalud-clinic/admission-service/internal/telemetry"
)

// SetupRouter initializes all routes for the application
func SetupRouter(db *sql.DB, publisher messaging.PublisherInterface, cfg config.Config, metrics *telemetry.Metrics) *mux.Router {
	// Initialize patient components
	patientRepo := patient.NewRepository(db)
	patientService := patient.NewService(patientRepo, publisher)
	patientHandler := patient.NewHandler(patientService)

	// Initialize survey components
	surveyRepo := survey.NewRepository(db)
	surveyService := survey.NewService(surveyRepo, publisher)
	surveyHandler := survey.NewHandler(surveyService)

	// Initialize analysis components
	analysisCache := analyzer.NewCache(cfg.AnalysisCacheSize)
	analysisService := analysis.NewService(patientService, surveyService, publisher, analysisCache, cfg.Thresholds, metrics)
	analysisHandler := analysis.NewHandler(analysisService, cfg.DefaultConversionProbability)

	// Initialize appointment components
	appointmentRepo := appointment.NewRepository(db)
	appointmentService := appointment.NewService(appointmentRepo, publisher)
	appointmentHandler := appointment.NewHandler(appointmentService)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("admission-service"))
	if metrics != nil {
		r.Use(metricsMiddleware(metrics))
	}

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"admission-service"}`))
	}).Methods("GET")

	// Patient routes
	r.HandleFunc("/patients", patientHandler.CreatePatient).Methods("POST")
	r.HandleFunc("/patients", patientHandler.ListPatients).Methods("GET")
	r.HandleFunc("/patients/{id}", patientHandler.GetPatient).Methods("GET")
	r.HandleFunc("/patients/{id}", patientHandler.UpdatePatient).Methods("PUT")
	r.HandleFunc("/patients/{id}", patientHandler.DeletePatient).Methods("DELETE")

	// Survey routes
	r.HandleFunc("/patients/{id}/survey", surveyHandler.SubmitSurvey).Methods("PUT")
	r.HandleFunc("/patients/{id}/survey", surveyHandler.GetSurvey).Methods("GET")

	// Analysis routes
	r.HandleFunc("/patients/{id}/analysis", analysisHandler.AnalyzePatient).Methods("GET")
	r.HandleFunc("/cohort/overview", analysisHandler.CohortOverview).Methods("GET")

	// Appointment routes
	r.HandleFunc("/appointments", appointmentHandler.CreateAppointment).Methods("POST")
	r.HandleFunc("/appointments", appointmentHandler.ListAppointments).Methods("GET")
	r.HandleFunc("/appointments/{id}", appointmentHandler.GetAppointment).Methods("GET")
	r.HandleFunc("/appointments/{id}", appointmentHandler.UpdateAppointment).Methods("PUT")
	r.HandleFunc("/appointments/{id}", appointmentHandler.CancelAppointment).Methods("DELETE")

	return r
}

// statusRecorder captures the response status for metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func metricsMiddleware(metrics *telemetry.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			metrics.RecordHTTPRequest(r.Context(), r.Method, route, rec.status, float64(time.Since(started).Milliseconds()))
		})
	}
}
