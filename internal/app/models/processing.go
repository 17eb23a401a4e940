package models

import (
	"strings"

	"psyeval-service/internal/pkg/constvars"
)

type ProcessingState string

const (
	ProcessingRunning   ProcessingState = constvars.ProcessingStateProcessing
	ProcessingCompleted ProcessingState = constvars.ProcessingStateCompleted
	ProcessingError     ProcessingState = constvars.ProcessingStateError
)

func ParseProcessingState(raw string) ProcessingState {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case constvars.ProcessingStateProcessing, "IN_PROGRESS":
		return ProcessingRunning
	case constvars.ProcessingStateCompleted:
		return ProcessingCompleted
	case constvars.ProcessingStateError:
		return ProcessingError
	}
	return ProcessingState(raw)
}

// Terminal reports whether no further state transition can occur.
func (s ProcessingState) Terminal() bool {
	return s == ProcessingCompleted || s == ProcessingError
}

// ProcessingStatus is produced exclusively by the remote scoring service.
// Progress is expected, but not guaranteed, to be non-decreasing while the
// state is still PROCESSING.
type ProcessingStatus struct {
	SessionID       string          `json:"sessionId"`
	State           ProcessingState `json:"state"`
	ProgressPercent int             `json:"progressPercent"`
	Message         string          `json:"message,omitempty"`
}
