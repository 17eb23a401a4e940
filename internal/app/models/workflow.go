package models

import (
	"time"

	"psyeval-service/internal/pkg/constvars"
)

type WorkflowStep string

const (
	StepSelectingPatient WorkflowStep = constvars.WorkflowStepSelectingPatient
	StepAnswering        WorkflowStep = constvars.WorkflowStepAnswering
	StepReadyToSubmit    WorkflowStep = constvars.WorkflowStepReadyToSubmit
	StepSubmitting       WorkflowStep = constvars.WorkflowStepSubmitting
	StepAwaitingResult   WorkflowStep = constvars.WorkflowStepAwaitingResult
	StepResultReady      WorkflowStep = constvars.WorkflowStepResultReady
	StepFailed           WorkflowStep = constvars.WorkflowStepFailed
)

// Terminal reports whether the workflow instance can make no further progress.
func (s WorkflowStep) Terminal() bool {
	return s == StepResultReady || s == StepFailed
}

// Failure describes why a workflow reached FAILED. Kind RESULTS_DELAYED is a
// soft failure: the remote computation may still complete later.
type Failure struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

// Cursor addresses one question inside the ordered catalog.
type Cursor struct {
	QuestionnaireIndex int `json:"questionnaireIndex"`
	QuestionIndex      int `json:"questionIndex"`
}

// ResumeCandidate is a parked resume-vs-abort decision: the workflow holds it
// until the operator chooses, and never creates a session while it is pending.
type ResumeCandidate struct {
	Session AssessmentSession `json:"session"`
	Patient Patient           `json:"patient"`
}

// WorkflowRecord is the audit snapshot persisted on every step transition.
type WorkflowRecord struct {
	WorkflowID     string    `bson:"workflow_id" json:"workflowId"`
	PractitionerID string    `bson:"practitioner_id" json:"practitionerId"`
	PatientID      string    `bson:"patient_id,omitempty" json:"patientId,omitempty"`
	SessionID      string    `bson:"session_id,omitempty" json:"sessionId,omitempty"`
	Step           string    `bson:"step" json:"step"`
	FailureKind    string    `bson:"failure_kind,omitempty" json:"failureKind,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
