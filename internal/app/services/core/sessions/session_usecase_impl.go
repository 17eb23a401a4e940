package sessions

import (
	"context"
	"sort"
	"sync"

	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/models"
	"psyeval-service/internal/app/services/core/results"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/dto/responses"
	"psyeval-service/internal/pkg/exceptions"
	"psyeval-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	AssessmentBackendClient contracts.AssessmentBackendClient
	Log                     *zap.Logger
}

var (
	sessionUsecaseInstance contracts.SessionUsecase
	onceSessionUsecase     sync.Once
)

func NewSessionUsecase(assessmentBackendClient contracts.AssessmentBackendClient, logger *zap.Logger) contracts.SessionUsecase {
	onceSessionUsecase.Do(func() {
		instance := &sessionUsecase{
			AssessmentBackendClient: assessmentBackendClient,
			Log:                     logger,
		}
		sessionUsecaseInstance = instance
	})
	return sessionUsecaseInstance
}

// FindSessionView returns the full view for completed sessions and the
// partial view for everything else. Results come from the results endpoint
// when available, falling back to fields embedded on the session record.
func (uc *sessionUsecase) FindSessionView(ctx context.Context, sessionID string) (*models.SessionView, error) {
	record, err := uc.AssessmentBackendClient.FindSessionByID(ctx, sessionID)
	if err != nil {
		if exceptions.IsSessionVanished(err) {
			return nil, exceptions.ErrSessionNotFound(sessionID)
		}
		return nil, err
	}
	return uc.buildView(ctx, record)
}

// FindSessionViewByConsultation resolves the session attached to a
// consultation and returns the same view shape as FindSessionView.
func (uc *sessionUsecase) FindSessionViewByConsultation(ctx context.Context, consultationID string) (*models.SessionView, error) {
	record, err := uc.AssessmentBackendClient.FindSessionByConsultation(ctx, consultationID)
	if err != nil {
		if exceptions.IsSessionVanished(err) {
			return nil, exceptions.ErrSessionNotFound(consultationID)
		}
		return nil, err
	}
	return uc.buildView(ctx, record)
}

func (uc *sessionUsecase) buildView(ctx context.Context, record *backend_dto.SessionRecord) (*models.SessionView, error) {
	requestID := utils.RequestIDFromContext(ctx)
	sessionID := record.ID

	var payload *backend_dto.ResultPayload
	var err error
	if models.ParseSessionStatus(record.Status) == models.SessionCompleted {
		payload, err = uc.AssessmentBackendClient.FindResults(ctx, sessionID)
		if err != nil {
			// The record itself may still carry the flat result fields.
			uc.Log.Warn("sessionUsecase.buildView result fetch failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
			payload = nil
		}
	}

	view := results.BuildSessionView(record, payload)
	uc.Log.Debug("sessionUsecase.buildView built view",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingStepKey, string(view.Kind)),
	)
	return view, nil
}

// FindSessionsByPractitioner lists the practitioner's session history, newest
// first, flagging sessions a workflow could resume.
func (uc *sessionUsecase) FindSessionsByPractitioner(ctx context.Context, practitionerID string) ([]responses.SessionSummary, error) {
	records, err := uc.AssessmentBackendClient.FindSessionsByPractitioner(ctx, practitionerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.SessionSummary, 0, len(records))
	for i := range records {
		session := results.ToModelSession(&records[i])
		summaries = append(summaries, responses.SessionSummary{
			Session:   session,
			Resumable: session.InProgress(),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Session.CreatedAt.After(summaries[j].Session.CreatedAt)
	})

	uc.Log.Info("sessionUsecase.FindSessionsByPractitioner listed sessions",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.Int(constvars.LoggingSessionCountKey, len(summaries)),
	)
	return summaries, nil
}
