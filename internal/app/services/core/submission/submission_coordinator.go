package submission

import (
	"context"

	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/services/core/answers"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"
	"psyeval-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Coordinator validates an answer store is complete and ships it to the
// backend. Validation is purely local: an incomplete store never produces
// network traffic.
type Coordinator struct {
	AssessmentBackendClient contracts.AssessmentBackendClient
	Log                     *zap.Logger
}

func NewCoordinator(assessmentBackendClient contracts.AssessmentBackendClient, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		AssessmentBackendClient: assessmentBackendClient,
		Log:                     logger,
	}
}

// Submit sends the full answer set for sessionID. A rejection from the
// backend (4xx) is final and the caller should not retry the same payload;
// anything else is transient and retryable with answers intact.
func (c *Coordinator) Submit(ctx context.Context, sessionID string, store *answers.Store) (*backend_dto.ProcessingStatusDTO, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if questionnaireType, answered, total, ok := store.FirstIncomplete(); ok {
		c.Log.Warn("submission.Coordinator blocked incomplete submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingQuestionnaireKey, string(questionnaireType)),
		)
		return nil, exceptions.ErrIncompleteAnswers(string(questionnaireType), answered, total)
	}

	answerSet := store.Export()
	statusDTO, err := c.AssessmentBackendClient.SubmitAnswers(ctx, sessionID, answerSet)
	if err != nil {
		code := exceptions.StatusCodeOf(err)
		if code >= 400 && code < 500 {
			c.Log.Error("submission.Coordinator backend rejected submission",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Int(constvars.LoggingStatusCodeKey, code),
				zap.Error(err),
			)
			return nil, exceptions.ErrSubmissionRejected(err)
		}
		c.Log.Warn("submission.Coordinator transient submission failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTransientSubmission(err)
	}

	store.Freeze()
	c.Log.Info("submission.Coordinator submitted answers",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingProgressKey, statusDTO.ProgressPercent),
	)
	return statusDTO, nil
}
