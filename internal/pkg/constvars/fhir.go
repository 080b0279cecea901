package constvars

const (
	ResourcePatient = "Patient"
)

const (
	FhirDateLayout = "2006-01-02"
)

const (
	FhirUseOfficial = "official"
)

// Identifier type coding for medical record numbers, per HL7 v2-0203.
const (
	FhirIdentifierTypeSystem     = "http://terminology.hl7.org/CodeSystem/v2-0203"
	FhirIdentifierTypeCodeMRN    = "MR"
	FhirIdentifierTypeDisplayMRN = "Medical record number"
)

const (
	MRNLength = 9
)
