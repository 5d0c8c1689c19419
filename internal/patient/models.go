package patient

import (
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/pagination"
)

// CreatePatientRequest represents the request to register a new patient
type CreatePatientRequest struct {
	FullName          string   `json:"full_name" validate:"required"`
	Email             string   `json:"email"`
	PhoneNumber       string   `json:"phone_number"`
	Age               int      `json:"age"`
	ChronicConditions []string `json:"chronic_conditions"`
	HasPriorDiagnosis bool     `json:"has_prior_diagnosis"`
	DiagnosisDetail   string   `json:"diagnosis_detail"`
}

// UpdatePatientRequest represents the request to update a patient
type UpdatePatientRequest struct {
	FullName          *string   `json:"full_name,omitempty"`
	Email             *string   `json:"email,omitempty"`
	PhoneNumber       *string   `json:"phone_number,omitempty"`
	Age               *int      `json:"age,omitempty"`
	ChronicConditions *[]string `json:"chronic_conditions,omitempty"`
	HasPriorDiagnosis *bool     `json:"has_prior_diagnosis,omitempty"`
	DiagnosisDetail   *string   `json:"diagnosis_detail,omitempty"`
	IsActive          *bool     `json:"is_active,omitempty"`
}

// PatientResponse represents the patient data returned to clients
type PatientResponse struct {
	ID                string     `json:"id"`
	FullName          string     `json:"full_name"`
	Email             string     `json:"email"`
	PhoneNumber       string     `json:"phone_number"`
	Age               int        `json:"age"`
	ChronicConditions []string   `json:"chronic_conditions"`
	HasPriorDiagnosis bool       `json:"has_prior_diagnosis"`
	DiagnosisDetail   string     `json:"diagnosis_detail"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// PaginatedPatientListResponse is the paginated list payload
type PaginatedPatientListResponse struct {
	Success  bool              `json:"success"`
	Patients []PatientResponse `json:"patients"`
	Meta     pagination.Meta   `json:"meta"`
}
