package routers

import (
	"patient-registry-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/{mrn}", patientController.FindPatientByMRN)
}
