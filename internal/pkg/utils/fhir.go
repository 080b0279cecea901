package utils

import (
	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/fhir_dto"
	"strings"
	"time"
)

// GetFullName joins the given names and family name of the first official
// name entry, falling back to the first entry when no official one exists.
func GetFullName(names []fhir_dto.HumanName) string {
	name, ok := pickName(names)
	if !ok {
		return ""
	}
	parts := append([]string{}, name.Given...)
	if name.Family != "" {
		parts = append(parts, name.Family)
	}
	return strings.Join(parts, " ")
}

func GetGivenName(names []fhir_dto.HumanName) string {
	name, ok := pickName(names)
	if !ok || len(name.Given) == 0 {
		return ""
	}
	return name.Given[0]
}

func GetFamilyName(names []fhir_dto.HumanName) string {
	name, ok := pickName(names)
	if !ok {
		return ""
	}
	return name.Family
}

func pickName(names []fhir_dto.HumanName) (fhir_dto.HumanName, bool) {
	if len(names) == 0 {
		return fhir_dto.HumanName{}, false
	}
	for _, name := range names {
		if name.Use == constvars.FhirUseOfficial {
			return name, true
		}
	}
	return names[0], true
}

// AgeAt computes whole years between birthDate and the reference time,
// decrementing when the birthday has not yet passed in the reference year.
func AgeAt(birthDate string, at time.Time) int {
	dob, err := time.Parse(constvars.FhirDateLayout, birthDate)
	if err != nil {
		return 0
	}

	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	return age
}

func CalculateAge(birthDate string) int {
	if birthDate == "" {
		return 0
	}
	return AgeAt(birthDate, time.Now())
}
