package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vidasalud-clinic/admission-service/internal/patient"
)

type Handler struct {
	service            ServiceInterface
	defaultProbability float64
}

func NewHandler(service ServiceInterface, defaultProbability float64) *Handler {
	return &Handler{
		service:            service,
		defaultProbability: defaultProbability,
	}
}

// AnalyzePatient handles GET /patients/{id}/analysis
func (h *Handler) AnalyzePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["id"]
	if patientID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Patient ID is required")
		return
	}

	probability := h.defaultProbability
	if probStr := r.URL.Query().Get("conversion_probability"); probStr != "" {
		parsed, err := strconv.ParseFloat(probStr, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			respondError(w, http.StatusBadRequest, "invalid_probability", "conversion_probability must be a number between 0 and 1")
			return
		}
		probability = parsed
	}

	report, err := h.service.AnalyzePatient(r.Context(), patientID, probability)
	if errors.Is(err, patient.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "Patient not found")
		return
	}
	if errors.Is(err, ErrSurveyNotCompleted) {
		respondError(w, http.StatusNotFound, "survey_not_completed", "Patient has not completed the intake survey")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "analysis_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalysisSuccessResponse{
		Success: true,
		Report:  report,
	})
}

// CohortOverview handles GET /cohort/overview
func (h *Handler) CohortOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.CohortOverview(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "overview_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(overview)
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}
