package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"len":       "must be %s characters long",
	"birthdate": "must be a valid date in YYYY-MM-DD format",
	"mrn":       "must be a 9-digit number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"len": true,
}
