package utils

import (
	"patient-registry-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	birthDate := "2000-06-15"

	t.Run("Day Before Birthday", func(t *testing.T) {
		at := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 23, AgeAt(birthDate, at))
	})

	t.Run("On Birthday", func(t *testing.T) {
		at := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 24, AgeAt(birthDate, at))
	})

	t.Run("After Birthday", func(t *testing.T) {
		at := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 24, AgeAt(birthDate, at))
	})

	t.Run("Earlier Month Later Day", func(t *testing.T) {
		at := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 23, AgeAt(birthDate, at))
	})

	t.Run("Malformed Birth Date", func(t *testing.T) {
		at := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, AgeAt("15/06/2000", at))
	})
}

func TestCalculateAge(t *testing.T) {
	assert.Equal(t, 0, CalculateAge(""))
}

func TestGetFullName(t *testing.T) {
	t.Run("Official Name Preferred", func(t *testing.T) {
		names := []fhir_dto.HumanName{
			{Use: "nickname", Family: "Doe", Given: []string{"Johnny"}},
			{Use: "official", Family: "Doe", Given: []string{"John"}},
		}
		assert.Equal(t, "John Doe", GetFullName(names))
		assert.Equal(t, "John", GetGivenName(names))
		assert.Equal(t, "Doe", GetFamilyName(names))
	})

	t.Run("Falls Back To First Entry", func(t *testing.T) {
		names := []fhir_dto.HumanName{
			{Family: "Smith", Given: []string{"Jane", "Q"}},
		}
		assert.Equal(t, "Jane Q Smith", GetFullName(names))
	})

	t.Run("No Names", func(t *testing.T) {
		assert.Equal(t, "", GetFullName(nil))
		assert.Equal(t, "", GetGivenName(nil))
		assert.Equal(t, "", GetFamilyName(nil))
	})
}
