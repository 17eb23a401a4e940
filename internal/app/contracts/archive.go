package contracts

import (
	"context"

	"psyeval-service/internal/app/models"
)

// ResultArchive persists the canonical normalized result to object storage
// once a workflow reaches RESULT_READY.
type ResultArchive interface {
	StoreResult(ctx context.Context, result *models.ResultSet) error
}

// WorkflowRepository keeps audit snapshots of workflow instances. Terminal
// instances stay queryable after the in-memory instance is torn down.
type WorkflowRepository interface {
	SaveSnapshot(ctx context.Context, record *models.WorkflowRecord) error
	FindByPractitioner(ctx context.Context, practitionerID string) ([]models.WorkflowRecord, error)
}
