package config

import (
	"patient-registry-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                              utils.GetEnvString("APP_ENV", "development"),
			Port:                             utils.GetEnvString("APP_PORT", ":8080"),
			Version:                          utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:                   utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                      utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:                  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:          utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			PatientCacheExpiredTimeInMinutes: utils.GetEnvInt("APP_PATIENT_CACHE_EXPIRED_TIME_IN_MINUTES", 15),
		},
		FHIR: FHIR{
			BaseUrl:          utils.GetEnvString("FHIR_BASE_URL", "http://hapi.fhir.org/baseR4"),
			IdentifierSystem: utils.GetEnvString("FHIR_IDENTIFIER_SYSTEM", "http://fhir.openclintech.com/r4"),
		},
	}
}
