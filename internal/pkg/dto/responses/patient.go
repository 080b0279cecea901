package responses

type CreatePatient struct {
	MRN         string `json:"mrn"`
	ResourceID  string `json:"resource_id"`
	ResourceURL string `json:"resource_url"`
	Verified    bool   `json:"verified"`
}

type PatientSummary struct {
	MRN         string `json:"mrn"`
	ResourceID  string `json:"resource_id"`
	ResourceURL string `json:"resource_url"`
	FullName    string `json:"full_name"`
	GivenName   string `json:"given_name,omitempty"`
	FamilyName  string `json:"family_name,omitempty"`
	BirthDate   string `json:"birth_date"`
	Age         int    `json:"age"`
}
