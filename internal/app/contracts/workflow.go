package contracts

import (
	"context"

	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/dto/requests"
	"psyeval-service/internal/pkg/dto/responses"
)

// WorkflowUsecase drives assessment workflow instances. Every instance owns
// its own answer store and polling scheduler; instances never share mutable
// state.
type WorkflowUsecase interface {
	Start(ctx context.Context, practitionerID string, request *requests.StartWorkflow) (*responses.WorkflowSnapshot, error)
	Snapshot(ctx context.Context, workflowID string) (*responses.WorkflowSnapshot, error)
	SelectablePatients(ctx context.Context, workflowID string) ([]models.Patient, error)
	SelectPatient(ctx context.Context, workflowID, patientID string) (*responses.WorkflowSnapshot, error)
	ApplyResumeDecision(ctx context.Context, workflowID, decision string) (*responses.WorkflowSnapshot, error)
	RecordAnswer(ctx context.Context, workflowID string, value int) (*responses.WorkflowSnapshot, error)
	StepBack(ctx context.Context, workflowID string) (*responses.WorkflowSnapshot, error)
	Submit(ctx context.Context, workflowID string) (*responses.WorkflowSnapshot, error)
	History(ctx context.Context, practitionerID string) ([]models.WorkflowRecord, error)
	Teardown(ctx context.Context, workflowID string) error
	Shutdown()
}

// SessionUsecase serves read-only session views outside any workflow.
type SessionUsecase interface {
	FindSessionView(ctx context.Context, sessionID string) (*models.SessionView, error)
	FindSessionViewByConsultation(ctx context.Context, consultationID string) (*models.SessionView, error)
	FindSessionsByPractitioner(ctx context.Context, practitionerID string) ([]responses.SessionSummary, error)
}
