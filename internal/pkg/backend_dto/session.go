package backend_dto

import "time"

// SessionRecord mirrors the backend's assessment session resource. Completed
// sessions may carry result fields in either shape; the normalizer decides.
type SessionRecord struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patientId"`
	PractitionerID string    `json:"practitionerId"`
	ConsultationID string    `json:"consultationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	Status         string    `json:"status"`

	ResultFields
}

type CreateSessionRequest struct {
	PatientID      string `json:"patientId"`
	PractitionerID string `json:"practitionerId"`
	ConsultationID string `json:"consultationId,omitempty"`
	Status         string `json:"status"`
}

// AnswerItem is one {questionNumber, value} pair on the wire.
type AnswerItem struct {
	QuestionNumber int `json:"questionNumber"`
	Value          int `json:"value"`
}

// AnswerSet groups answers per questionnaire type, each slice sorted ascending
// by question number for wire compatibility.
type AnswerSet struct {
	GAD7  []AnswerItem `json:"gad7"`
	PHQ9  []AnswerItem `json:"phq9"`
	PSS10 []AnswerItem `json:"pss10"`
}

type ProcessingStatusDTO struct {
	SessionID       string `json:"sessionId"`
	State           string `json:"state"`
	ProgressPercent int    `json:"progressPercent"`
	Completed       bool   `json:"completed"`
	Message         string `json:"message,omitempty"`
}

type QuestionDTO struct {
	Number          int    `json:"number"`
	Text            string `json:"text"`
	IsReverseScored bool   `json:"isReverseScored"`
	IsCritical      bool   `json:"isCritical"`
}

type QuestionnaireDTO struct {
	Type      string        `json:"type"`
	Questions []QuestionDTO `json:"questions"`
}

type PatientRecord struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Active      bool   `json:"active"`
}
