package patient

import (
	"context"

	"github.com/vidasalud-clinic/admission-service/internal/pagination"
)

// RepositoryInterface defines the contract for patient persistence
type RepositoryInterface interface {
	CreatePatient(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error)
	GetPatient(ctx context.Context, id string) (*PatientResponse, error)
	ListPatients(ctx context.Context, params pagination.Params) ([]PatientResponse, int, error)
	UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error)
	DeletePatient(ctx context.Context, id string) error
}
