package constvars

const (
	ResponseSuccess = "success"
)

const (
	CreatePatientSuccessMessage = "patient created successfully"
	FindPatientSuccessMessage   = "patient found successfully"
)
