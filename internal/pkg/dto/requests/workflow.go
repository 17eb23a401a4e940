package requests

type StartWorkflow struct {
	PatientID string `json:"patientId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

type SelectPatient struct {
	PatientID string `json:"patientId" validate:"required"`
}

type ResumeDecision struct {
	Decision string `json:"decision" validate:"required,oneof=resume abort"`
}

type RecordAnswer struct {
	Value *int `json:"value" validate:"required,min=0"`
}
