package messaging

import (
	"fmt"
	"time"
)

// Event routing keys as constants
const (
	// Patient events
	EventPatientCreated = "patient.created"
	EventPatientUpdated = "patient.updated"
	EventPatientDeleted = "patient.deleted"

	// Survey and analysis events
	EventSurveySubmitted        = "survey.submitted"
	EventSurveyAnalyzed         = "survey.analyzed"
	EventPatientFlaggedPriority = "patient.flagged_priority"

	// Appointment events
	EventAppointmentScheduled = "appointment.scheduled"
	EventAppointmentCancelled = "appointment.cancelled"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// PatientCreatedEvent represents a patient registration event
type PatientCreatedEvent struct {
	BaseEvent
	Data PatientCreatedData `json:"data"`
}

type PatientCreatedData struct {
	PatientID         string    `json:"patient_id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	PhoneNumber       string    `json:"phone_number,omitempty"`
	Age               int       `json:"age"`
	HasPriorDiagnosis bool      `json:"has_prior_diagnosis"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// PatientUpdatedEvent represents a patient update event
type PatientUpdatedEvent struct {
	BaseEvent
	Data PatientUpdatedData `json:"data"`
}

type PatientUpdatedData struct {
	PatientID string    `json:"patient_id"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PatientDeletedEvent represents a patient deletion event
type PatientDeletedEvent struct {
	BaseEvent
	Data PatientDeletedData `json:"data"`
}

type PatientDeletedData struct {
	PatientID string    `json:"patient_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// SurveySubmittedEvent represents an intake survey submission or revision
type SurveySubmittedEvent struct {
	BaseEvent
	Data SurveySubmittedData `json:"data"`
}

type SurveySubmittedData struct {
	SurveyID    string    `json:"survey_id"`
	PatientID   string    `json:"patient_id"`
	Severity    string    `json:"severity"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SurveyAnalyzedEvent represents a completed risk analysis
type SurveyAnalyzedEvent struct {
	BaseEvent
	Data SurveyAnalyzedData `json:"data"`
}

type SurveyAnalyzedData struct {
	PatientID         string    `json:"patient_id"`
	SurveyID          string    `json:"survey_id"`
	RiskScore         int       `json:"risk_score"`
	RiskBand          string    `json:"risk_band"`
	ProbableDiagnosis string    `json:"probable_diagnosis"`
	AnalyzedAt        time.Time `json:"analyzed_at"`
}

// PatientFlaggedPriorityEvent fires when a risk score crosses the
// priority threshold
type PatientFlaggedPriorityEvent struct {
	BaseEvent
	Data PatientFlaggedPriorityData `json:"data"`
}

type PatientFlaggedPriorityData struct {
	PatientID string    `json:"patient_id"`
	RiskScore int       `json:"risk_score"`
	Threshold int       `json:"threshold"`
	FlaggedAt time.Time `json:"flagged_at"`
}

// AppointmentScheduledEvent represents a new appointment
type AppointmentScheduledEvent struct {
	BaseEvent
	Data AppointmentScheduledData `json:"data"`
}

type AppointmentScheduledData struct {
	AppointmentID   string    `json:"appointment_id"`
	PatientID       string    `json:"patient_id"`
	AppointmentType string    `json:"appointment_type"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// AppointmentCancelledEvent represents a cancelled appointment
type AppointmentCancelledEvent struct {
	BaseEvent
	Data AppointmentCancelledData `json:"data"`
}

type AppointmentCancelledData struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	CancelledAt   time.Time `json:"cancelled_at"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     fmt.Sprintf("%d", time.Now().UnixNano()),
		Timestamp:   time.Now().UTC(), // Explicitly set to UTC
		ServiceName: "admission-service",
	}
}
