package survey

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

type SurveySuccessResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Survey  *SurveyResponse `json:"survey,omitempty"`
}

// SubmitSurvey handles PUT /patients/{id}/survey
func (h *Handler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["id"]
	if patientID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Patient ID is required")
		return
	}

	var req SubmitSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	if req.PainIntensity < MinPainIntensity || req.PainIntensity > MaxPainIntensity {
		respondError(w, http.StatusBadRequest, "validation_error", "Pain intensity must be between 0 and 10")
		return
	}

	survey, err := h.service.SubmitSurvey(r.Context(), patientID, req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "submission_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SurveySuccessResponse{
		Success: true,
		Message: "Survey submitted successfully",
		Survey:  survey,
	})
}

// GetSurvey handles GET /patients/{id}/survey
func (h *Handler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["id"]
	if patientID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Patient ID is required")
		return
	}

	survey, err := h.service.GetSurvey(r.Context(), patientID)
	if errors.Is(err, ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "No survey stored for this patient")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SurveySuccessResponse{
		Success: true,
		Message: "Survey retrieved successfully",
		Survey:  survey,
	})
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}
