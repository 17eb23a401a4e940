package contracts

import "context"

// AssessmentEvent is published when a workflow reaches a terminal step.
type AssessmentEvent struct {
	Event          string `json:"event"`
	WorkflowID     string `json:"workflow_id"`
	SessionID      string `json:"session_id,omitempty"`
	PatientID      string `json:"patient_id,omitempty"`
	PractitionerID string `json:"practitioner_id"`
	Message        string `json:"message,omitempty"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event *AssessmentEvent) error
}
