package patients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"patient-registry-service/internal/pkg/fhir_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestFhirClient(baseUrl string) *patientFhirClient {
	return &patientFhirClient{
		BaseUrl: baseUrl + "/Patient",
		Log:     zap.NewNop(),
	}
}

func TestPatientFhirClient_CreatePatient(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/Patient", r.URL.Path)
			assert.Equal(t, "application/fhir+json", r.Header.Get("Content-Type"))

			var request fhir_dto.Patient
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			request.ID = "example-id-123"

			w.Header().Set("Content-Type", "application/fhir+json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(request)
		}))
		defer server.Close()

		client := newTestFhirClient(server.URL)
		patient, err := client.CreatePatient(context.Background(), &fhir_dto.Patient{
			ResourceType: "Patient",
			BirthDate:    "2000-06-15",
		})

		assert.NoError(t, err)
		assert.NotNil(t, patient)
		assert.Equal(t, "example-id-123", patient.ID)
		assert.Equal(t, "2000-06-15", patient.BirthDate)
	})

	t.Run("Server Rejects With OperationOutcome", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/fhir+json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(fhir_dto.OperationOutcome{
				ResourceType: "OperationOutcome",
				Issue: []fhir_dto.OperationOutcomeIssue{
					{Severity: "error", Code: "invalid", Diagnostics: "missing birthDate"},
				},
			})
		}))
		defer server.Close()

		client := newTestFhirClient(server.URL)
		patient, err := client.CreatePatient(context.Background(), &fhir_dto.Patient{ResourceType: "Patient"})

		assert.Error(t, err)
		assert.Nil(t, patient)
	})

	t.Run("Server Unreachable", func(t *testing.T) {
		client := newTestFhirClient("http://127.0.0.1:1")
		patient, err := client.CreatePatient(context.Background(), &fhir_dto.Patient{ResourceType: "Patient"})

		assert.Error(t, err)
		assert.Nil(t, patient)
	})
}

func TestPatientFhirClient_FindPatientByIdentifier(t *testing.T) {
	system := "http://fhir.openclintech.com/r4"

	t.Run("Single Match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, system+"|123456789", r.URL.Query().Get("identifier"))

			bundle := map[string]interface{}{
				"resourceType": "Bundle",
				"type":         "searchset",
				"total":        1,
				"entry": []map[string]interface{}{
					{
						"fullUrl": "http://example.org/Patient/abc",
						"resource": fhir_dto.Patient{
							ID:           "abc",
							ResourceType: "Patient",
							BirthDate:    "2000-06-15",
							Name: []fhir_dto.HumanName{
								{Use: "official", Family: "Doe", Given: []string{"John"}},
							},
						},
					},
				},
			}
			w.Header().Set("Content-Type", "application/fhir+json")
			json.NewEncoder(w).Encode(bundle)
		}))
		defer server.Close()

		client := newTestFhirClient(server.URL)
		foundPatients, err := client.FindPatientByIdentifier(context.Background(), system, "123456789")

		assert.NoError(t, err)
		assert.Len(t, foundPatients, 1)
		assert.Equal(t, "abc", foundPatients[0].ID)
	})

	t.Run("No Match Returns Empty Slice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bundle := map[string]interface{}{
				"resourceType": "Bundle",
				"type":         "searchset",
				"total":        0,
			}
			w.Header().Set("Content-Type", "application/fhir+json")
			json.NewEncoder(w).Encode(bundle)
		}))
		defer server.Close()

		client := newTestFhirClient(server.URL)
		foundPatients, err := client.FindPatientByIdentifier(context.Background(), system, "000000000")

		assert.NoError(t, err)
		assert.Empty(t, foundPatients)
	})

	t.Run("Server Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestFhirClient(server.URL)
		foundPatients, err := client.FindPatientByIdentifier(context.Background(), system, "123456789")

		assert.Error(t, err)
		assert.Nil(t, foundPatients)
	})
}
