package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App  App
		FHIR FHIR
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                              string
		Port                             string
		Version                          string
		EndpointPrefix                   string
		MaxRequests                      int
		ShutdownTimeout                  int
		RequestTimeoutInSeconds          int
		PatientCacheExpiredTimeInMinutes int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	FHIR struct {
		BaseUrl          string
		IdentifierSystem string
	}
)

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	// Sync flushes buffered logs; stderr sync errors are not actionable.
	_ = b.Logger.Sync()

	return nil
}
