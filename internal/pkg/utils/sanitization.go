package utils

import (
	"patient-registry-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreatePatientRequest(request *requests.CreatePatientRequest) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.BirthDate = strings.TrimSpace(request.BirthDate)
}

func SanitizeMRN(mrn string) string {
	return strings.TrimSpace(mrn)
}
