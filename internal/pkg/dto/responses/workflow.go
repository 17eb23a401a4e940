package responses

import "psyeval-service/internal/app/models"

// CurrentQuestion describes the question under the cursor, with the response
// options for its questionnaire.
type CurrentQuestion struct {
	QuestionnaireType models.QuestionnaireType `json:"questionnaireType"`
	Question          models.Question          `json:"question"`
	Options           []models.LikertOption    `json:"options"`
	RecordedValue     *int                     `json:"recordedValue,omitempty"`
}

// WorkflowSnapshot is the full externally visible state of one workflow
// instance.
type WorkflowSnapshot struct {
	WorkflowID      string                    `json:"workflowId"`
	PractitionerID  string                    `json:"practitionerId"`
	Step            models.WorkflowStep       `json:"step"`
	Patient         *models.Patient           `json:"patient,omitempty"`
	Session         *models.AssessmentSession `json:"session,omitempty"`
	Cursor          *models.Cursor            `json:"cursor,omitempty"`
	CurrentQuestion *CurrentQuestion          `json:"currentQuestion,omitempty"`
	ProgressPercent int                       `json:"progressPercent"`
	PendingResume   *models.ResumeCandidate   `json:"pendingResume,omitempty"`
	Processing      *models.ProcessingStatus  `json:"processing,omitempty"`
	Result          *models.ResultSet         `json:"result,omitempty"`
	Failure         *models.Failure           `json:"failure,omitempty"`
}

// SessionSummary is one row of the practitioner's session history.
type SessionSummary struct {
	Session   models.AssessmentSession `json:"session"`
	Resumable bool                     `json:"resumable"`
}
