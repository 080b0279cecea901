package utils

import (
	"patient-registry-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_CreatePatientRequest(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			FirstName: "John",
			LastName:  "Doe",
			BirthDate: "2000-06-15",
		}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Missing First Name", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			LastName:  "Doe",
			BirthDate: "2000-06-15",
		}
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Missing Last Name", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			FirstName: "John",
			BirthDate: "2000-06-15",
		}
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Missing Birth Date", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			FirstName: "John",
			LastName:  "Doe",
		}
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Malformed Birth Date", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			FirstName: "John",
			LastName:  "Doe",
			BirthDate: "15/06/2000",
		}
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateMRN(t *testing.T) {
	t.Run("Valid MRN", func(t *testing.T) {
		assert.NoError(t, ValidateMRN("123456789"))
	})

	t.Run("Too Short", func(t *testing.T) {
		assert.Error(t, ValidateMRN("12345678"))
	})

	t.Run("Too Long", func(t *testing.T) {
		assert.Error(t, ValidateMRN("1234567890"))
	})

	t.Run("Non Numeric", func(t *testing.T) {
		assert.Error(t, ValidateMRN("12345678a"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Error(t, ValidateMRN(""))
	})
}
