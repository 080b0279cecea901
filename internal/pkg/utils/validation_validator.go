package utils

import (
	"patient-registry-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var mrnRegex = regexp.MustCompile(`^[0-9]{9}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("birthdate", validateBirthDate)
	validate.RegisterValidation("mrn", validateMRN)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateMRN checks a URL-supplied MRN outside of struct binding.
func ValidateMRN(mrn string) error {
	return validate.Var(mrn, "required,mrn")
}

func validateBirthDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.FhirDateLayout, fl.Field().String())
	return err == nil
}

func validateMRN(fl validator.FieldLevel) bool {
	return mrnRegex.MatchString(fl.Field().String())
}
