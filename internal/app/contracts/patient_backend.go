package contracts

import (
	"context"

	"psyeval-service/internal/pkg/backend_dto"
)

// PatientBackendClient reads the external patient registry. Identity data is
// never stored by this service.
type PatientBackendClient interface {
	FindPatientsByPractitioner(ctx context.Context, practitionerID string) ([]backend_dto.PatientRecord, error)
	FindPatientByID(ctx context.Context, patientID string) (*backend_dto.PatientRecord, error)
}
