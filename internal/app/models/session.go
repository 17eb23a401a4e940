package models

import (
	"strings"
	"time"

	"psyeval-service/internal/pkg/constvars"
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = constvars.SessionStatusInProgress
	SessionCompleted  SessionStatus = constvars.SessionStatusCompleted
	SessionCancelled  SessionStatus = constvars.SessionStatusCancelled
)

// ParseSessionStatus normalizes backend status values. Older backend releases
// emit lowercase statuses for the same states.
func ParseSessionStatus(raw string) SessionStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case constvars.SessionStatusInProgress:
		return SessionInProgress
	case constvars.SessionStatusCompleted:
		return SessionCompleted
	case constvars.SessionStatusCancelled:
		return SessionCancelled
	}
	return SessionStatus(raw)
}

// AssessmentSession is one instance of a patient undergoing the three
// questionnaires. Status only moves forward; a session is never reopened.
type AssessmentSession struct {
	ID             string        `json:"id"`
	PatientID      string        `json:"patientId"`
	PractitionerID string        `json:"practitionerId"`
	ConsultationID string        `json:"consultationId,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	Status         SessionStatus `json:"status"`
}

func (s *AssessmentSession) InProgress() bool {
	return s != nil && s.Status == SessionInProgress
}

// Patient is an identity reference owned by an external registry.
type Patient struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	HasActiveSession bool   `json:"hasActiveSession"`
}
