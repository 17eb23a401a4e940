package contracts

import (
	"context"

	"psyeval-service/internal/pkg/backend_dto"
)

// QuestionnaireBackendClient fetches the ordered questionnaire catalog.
type QuestionnaireBackendClient interface {
	FindQuestionnaires(ctx context.Context) ([]backend_dto.QuestionnaireDTO, error)
}
