// Package appointment schedules consultation and surgery appointments
// for registered patients.
package appointment

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/messaging"
)

// Appointment statuses
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Appointment types
const (
	TypeConsultation = "consultation"
	TypeFollowUp     = "follow_up"
	TypeSurgery      = "surgery"
)

type CreateAppointmentRequest struct {
	PatientID       string    `json:"patient_id" validate:"required"`
	AppointmentType string    `json:"appointment_type" validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	Notes           string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	AppointmentType *string    `json:"appointment_type,omitempty"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	Status          *string    `json:"status,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

type AppointmentResponse struct {
	ID              string     `json:"id"`
	PatientID       string     `json:"patient_id"`
	AppointmentType string     `json:"appointment_type"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// RepositoryInterface defines the contract for appointment persistence
type RepositoryInterface interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error)
	GetAppointment(ctx context.Context, id string) (*AppointmentResponse, error)
	ListAppointments(ctx context.Context, patientID string) ([]AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error)
	CancelAppointment(ctx context.Context, id string) (*AppointmentResponse, error)
}

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface) *Service {
	return &Service{repo: repo, publisher: publisher}
}

func validAppointmentType(t string) bool {
	switch t {
	case TypeConsultation, TypeFollowUp, TypeSurgery:
		return true
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func (s *Service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	if req.PatientID == "" {
		return nil, fmt.Errorf("patient ID is required")
	}
	if !validAppointmentType(req.AppointmentType) {
		return nil, fmt.Errorf("invalid appointment type: %s", req.AppointmentType)
	}
	if req.ScheduledAt.IsZero() {
		return nil, fmt.Errorf("scheduled time is required")
	}
	if req.ScheduledAt.Before(time.Now()) {
		return nil, fmt.Errorf("scheduled time must be in the future")
	}

	appointment, err := s.repo.CreateAppointment(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	event := messaging.AppointmentScheduledEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentScheduled),
		Data: messaging.AppointmentScheduledData{
			AppointmentID:   appointment.ID,
			PatientID:       appointment.PatientID,
			AppointmentType: appointment.AppointmentType,
			ScheduledAt:     appointment.ScheduledAt,
			CreatedAt:       appointment.CreatedAt,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventAppointmentScheduled, event); err != nil {
		log.Printf("Warning: failed to publish appointment.scheduled event for %s: %v", appointment.ID, err)
	}

	return appointment, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*AppointmentResponse, error) {
	appointment, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListAppointments returns all appointments, or only one patient's when
// patientID is non-empty.
func (s *Service) ListAppointments(ctx context.Context, patientID string) ([]AppointmentResponse, error) {
	appointments, err := s.repo.ListAppointments(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if appointments == nil {
		appointments = []AppointmentResponse{}
	}
	return appointments, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
	if req.AppointmentType != nil && !validAppointmentType(*req.AppointmentType) {
		return nil, fmt.Errorf("invalid appointment type: %s", *req.AppointmentType)
	}
	if req.Status != nil && !validStatus(*req.Status) {
		return nil, fmt.Errorf("invalid status: %s", *req.Status)
	}

	appointment, err := s.repo.UpdateAppointment(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// CancelAppointment marks an appointment cancelled and publishes the
// cancellation event.
func (s *Service) CancelAppointment(ctx context.Context, id string) (*AppointmentResponse, error) {
	appointment, err := s.repo.CancelAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	event := messaging.AppointmentCancelledEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentCancelled),
		Data: messaging.AppointmentCancelledData{
			AppointmentID: appointment.ID,
			PatientID:     appointment.PatientID,
			CancelledAt:   time.Now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventAppointmentCancelled, event); err != nil {
		log.Printf("Warning: failed to publish appointment.cancelled event for %s: %v", appointment.ID, err)
	}

	return appointment, nil
}
