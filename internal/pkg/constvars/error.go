package constvars

// Client messages are safe to surface to the browser.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientNotFound               = "no patient found with the given MRN"
	ErrClientInvalidMRN                    = "MRN must be a 9-digit number"
)

// Dev messages are for logs only.
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevValidationFailed  = "validation failed"
	ErrDevCannotParseJSON   = "cannot parse JSON"
	ErrDevCannotMarshalJSON = "cannot marshal JSON"

	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	ErrDevURLParamValidationFailed = "URL param %s validation failed"

	ErrDevFhirCreateResource         = "failed to create FHIR %s on remote server"
	ErrDevFhirSearchResource         = "failed to search FHIR %s on remote server"
	ErrDevFhirDecodeResourceResponse = "failed to decode FHIR %s response"
	ErrDevFhirResourceMissingID      = "remote server returned FHIR %s without a resource id"
	ErrDevFhirNoDataResource         = "no FHIR %s matched the search"

	ErrDevRedisGetData = "failed to get data from redis"
	ErrDevRedisSetData = "failed to set data to redis"
	ErrDevRedisDelete  = "failed to delete data from redis"
)
