package patient

import (
	"context"

	"github.com/vidasalud-clinic/admission-service/internal/pagination"
)

// ServiceInterface defines the contract for patient business logic operations
type ServiceInterface interface {
	CreatePatient(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error)
	GetPatient(ctx context.Context, id string) (*PatientResponse, error)
	ListPatients(ctx context.Context, params pagination.Params) (*PaginatedPatientListResponse, error)
	UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error)
	DeletePatient(ctx context.Context, id string) error
}
