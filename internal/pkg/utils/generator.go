package utils

import (
	"math/big"
	"patient-registry-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateMRN returns a pseudo-random 9-digit medical record number derived
// from the decimal form of a random UUID. Uniqueness is assumed, not enforced;
// there is no collision check against the FHIR server.
func GenerateMRN() string {
	id := uuid.New()
	digits := new(big.Int).SetBytes(id[:]).String()
	if len(digits) < constvars.MRNLength {
		return strings.Repeat("0", constvars.MRNLength-len(digits)) + digits
	}
	return digits[:constvars.MRNLength]
}
