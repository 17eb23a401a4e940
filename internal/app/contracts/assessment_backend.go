package contracts

import (
	"context"

	"psyeval-service/internal/pkg/backend_dto"
)

// AssessmentBackendClient talks to the remote assessment backend that owns
// session storage and the scoring pipeline. The transport treats the backend
// as a black box returning success or failure per call; no retries happen at
// this level.
type AssessmentBackendClient interface {
	CreateSession(ctx context.Context, request *backend_dto.CreateSessionRequest) (*backend_dto.SessionRecord, error)
	FindSessionByID(ctx context.Context, sessionID string) (*backend_dto.SessionRecord, error)
	FindSessionsByPractitioner(ctx context.Context, practitionerID string) ([]backend_dto.SessionRecord, error)
	FindSessionsByPatient(ctx context.Context, patientID string) ([]backend_dto.SessionRecord, error)
	FindSessionByConsultation(ctx context.Context, consultationID string) (*backend_dto.SessionRecord, error)
	FindAnswers(ctx context.Context, sessionID string) (*backend_dto.AnswerSet, error)
	SubmitAnswers(ctx context.Context, sessionID string, answers *backend_dto.AnswerSet) (*backend_dto.ProcessingStatusDTO, error)
	FindProcessingStatus(ctx context.Context, sessionID string) (*backend_dto.ProcessingStatusDTO, error)
	FindResults(ctx context.Context, sessionID string) (*backend_dto.ResultPayload, error)
}
