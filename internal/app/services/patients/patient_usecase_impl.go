package patients

import (
	"context"
	"fmt"
	"patient-registry-service/internal/app/config"
	redisService "patient-registry-service/internal/app/services/shared/redis"
	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/dto/requests"
	"patient-registry-service/internal/pkg/dto/responses"
	"patient-registry-service/internal/pkg/exceptions"
	"patient-registry-service/internal/pkg/fhir_dto"
	"patient-registry-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientFhirClient PatientFhirClient
	RedisRepository   redisService.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientFhirClient PatientFhirClient,
	redisRepository redisService.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		PatientFhirClient: patientFhirClient,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.CreatePatient, error) {
	mrn := utils.GenerateMRN()

	patientFhirRequest := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Identifier: []fhir_dto.Identifier{
			{
				Use: constvars.FhirUseOfficial,
				Type: fhir_dto.CodeableConcept{
					Coding: []fhir_dto.Coding{
						{
							System:  constvars.FhirIdentifierTypeSystem,
							Code:    constvars.FhirIdentifierTypeCodeMRN,
							Display: constvars.FhirIdentifierTypeDisplayMRN,
						},
					},
				},
				System: uc.InternalConfig.FHIR.IdentifierSystem,
				Value:  mrn,
			},
		},
		Name: []fhir_dto.HumanName{
			{
				Use:    constvars.FhirUseOfficial,
				Family: request.LastName,
				Given:  []string{request.FirstName},
			},
		},
		BirthDate: request.BirthDate,
	}

	savedPatient, err := uc.PatientFhirClient.CreatePatient(ctx, patientFhirRequest)
	if err != nil {
		return nil, err
	}

	// The remote server may answer 2xx without a usable resource. Treat the
	// create result as optional and never dereference it unguarded.
	if savedPatient == nil || savedPatient.ID == "" {
		return nil, exceptions.ErrFHIRResourceMissingID(nil, constvars.ResourcePatient)
	}

	response := &responses.CreatePatient{
		MRN:         mrn,
		ResourceID:  savedPatient.ID,
		ResourceURL: uc.buildResourceURL(savedPatient.ID),
	}

	// Verify the record is findable by its MRN. A verification miss does not
	// undo the create; it is reported so the user can retry the lookup later.
	foundPatients, err := uc.PatientFhirClient.FindPatientByIdentifier(ctx, uc.InternalConfig.FHIR.IdentifierSystem, mrn)
	if err != nil {
		uc.Log.Warn("patientUsecase.CreatePatient verification search failed",
			zap.String(constvars.LoggingMRNKey, mrn),
			zap.Error(err),
		)
		return response, nil
	}
	response.Verified = len(foundPatients) > 0

	return response, nil
}

func (uc *patientUsecase) FindPatientByMRN(ctx context.Context, mrn string) (*responses.PatientSummary, error) {
	cacheKey := fmt.Sprintf(constvars.RedisPatientMRNKeyFormat, mrn)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		summary := new(responses.PatientSummary)
		if err := json.Unmarshal([]byte(cached), summary); err == nil {
			return summary, nil
		}
	}

	foundPatients, err := uc.PatientFhirClient.FindPatientByIdentifier(ctx, uc.InternalConfig.FHIR.IdentifierSystem, mrn)
	if err != nil {
		return nil, err
	}
	if len(foundPatients) == 0 {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	// MRN is assumed unique, so at most one match; take the first entry.
	patient := foundPatients[0]

	summary := &responses.PatientSummary{
		MRN:         mrn,
		ResourceID:  patient.ID,
		ResourceURL: uc.buildResourceURL(patient.ID),
		FullName:    utils.GetFullName(patient.Name),
		GivenName:   utils.GetGivenName(patient.Name),
		FamilyName:  utils.GetFamilyName(patient.Name),
		BirthDate:   patient.BirthDate,
		Age:         utils.CalculateAge(patient.BirthDate),
	}

	cacheTTL := time.Duration(uc.InternalConfig.App.PatientCacheExpiredTimeInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, summary, cacheTTL); err != nil {
		// Cache failures never fail a lookup that already succeeded.
		uc.Log.Warn("patientUsecase.FindPatientByMRN failed to cache summary",
			zap.String(constvars.LoggingMRNKey, mrn),
			zap.Error(err),
		)
	}

	return summary, nil
}

func (uc *patientUsecase) buildResourceURL(resourceID string) string {
	return fmt.Sprintf("%s/%s/%s", uc.InternalConfig.FHIR.BaseUrl, constvars.ResourcePatient, resourceID)
}
