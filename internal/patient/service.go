package patient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/messaging"
	"github.com/vidasalud-clinic/admission-service/internal/pagination"
)

// MaxAge bounds the accepted patient age on registration
const MaxAge = 130

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface) *Service {
	return &Service{repo: repo, publisher: publisher}
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) CreatePatient(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if req.Age < 0 || req.Age > MaxAge {
		return nil, fmt.Errorf("age must be between 0 and %d", MaxAge)
	}

	patient, err := s.repo.CreatePatient(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	event := messaging.PatientCreatedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventPatientCreated),
		Data: messaging.PatientCreatedData{
			PatientID:         patient.ID,
			FullName:          patient.FullName,
			Email:             patient.Email,
			PhoneNumber:       patient.PhoneNumber,
			Age:               patient.Age,
			HasPriorDiagnosis: patient.HasPriorDiagnosis,
			IsActive:          patient.IsActive,
			CreatedAt:         patient.CreatedAt,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventPatientCreated, event); err != nil {
		log.Printf("Warning: failed to publish patient.created event for %s: %v", patient.ID, err)
	}

	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*PatientResponse, error) {
	patient, err := s.repo.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context, params pagination.Params) (*PaginatedPatientListResponse, error) {
	params.Validate()

	patients, total, err := s.repo.ListPatients(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	if patients == nil {
		patients = []PatientResponse{}
	}

	return &PaginatedPatientListResponse{
		Success:  true,
		Patients: patients,
		Meta:     params.CalculateMeta(total),
	}, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error) {
	if req.Age != nil && (*req.Age < 0 || *req.Age > MaxAge) {
		return nil, fmt.Errorf("age must be between 0 and %d", MaxAge)
	}
	if req.FullName != nil && *req.FullName == "" {
		return nil, fmt.Errorf("full name cannot be empty")
	}

	patient, err := s.repo.UpdatePatient(ctx, id, req)
	if err != nil {
		return nil, err
	}

	event := messaging.PatientUpdatedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventPatientUpdated),
		Data: messaging.PatientUpdatedData{
			PatientID: patient.ID,
			FullName:  patient.FullName,
			IsActive:  patient.IsActive,
			UpdatedAt: time.Now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventPatientUpdated, event); err != nil {
		log.Printf("Warning: failed to publish patient.updated event for %s: %v", patient.ID, err)
	}

	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if err := s.repo.DeletePatient(ctx, id); err != nil {
		return err
	}

	event := messaging.PatientDeletedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventPatientDeleted),
		Data: messaging.PatientDeletedData{
			PatientID: id,
			DeletedAt: time.Now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventPatientDeleted, event); err != nil {
		log.Printf("Warning: failed to publish patient.deleted event for %s: %v", id, err)
	}

	return nil
}
