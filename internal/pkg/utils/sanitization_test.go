package utils

import (
	"patient-registry-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreatePatientRequest(t *testing.T) {
	t.Run("Trims All Fields", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			FirstName: "  John  ",
			LastName:  "  Doe  ",
			BirthDate: " 2000-06-15 ",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "John", request.FirstName)
		assert.Equal(t, "Doe", request.LastName)
		assert.Equal(t, "2000-06-15", request.BirthDate)
	})

	t.Run("Clean Input Unchanged", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			FirstName: "Jane",
			LastName:  "Smith",
			BirthDate: "1990-01-31",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "Jane", request.FirstName)
		assert.Equal(t, "Smith", request.LastName)
		assert.Equal(t, "1990-01-31", request.BirthDate)
	})
}

func TestSanitizeMRN(t *testing.T) {
	assert.Equal(t, "123456789", SanitizeMRN(" 123456789 "))
}
