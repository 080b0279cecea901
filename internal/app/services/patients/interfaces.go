package patients

import (
	"context"
	"patient-registry-service/internal/pkg/dto/requests"
	"patient-registry-service/internal/pkg/dto/responses"
	"patient-registry-service/internal/pkg/fhir_dto"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.CreatePatient, error)
	FindPatientByMRN(ctx context.Context, mrn string) (*responses.PatientSummary, error)
}

type PatientFhirClient interface {
	CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
	FindPatientByIdentifier(ctx context.Context, system, value string) ([]fhir_dto.Patient, error)
}
