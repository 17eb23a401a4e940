package contracts

import (
	"context"

	"psyeval-service/internal/app/models"
)

// CatalogUsecase loads the questionnaire catalog. Load does not retry; the
// caller re-invokes after a CatalogUnavailable failure.
type CatalogUsecase interface {
	Load(ctx context.Context) ([]models.QuestionnaireDefinition, error)
}
