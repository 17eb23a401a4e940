package catalog

import (
	"context"
	"sync"
	"time"

	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"
	"psyeval-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type catalogUsecase struct {
	QuestionnaireBackendClient contracts.QuestionnaireBackendClient
	RedisRepository            contracts.RedisRepository
	CacheTTL                   time.Duration
	Log                        *zap.Logger
}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

func NewCatalogUsecase(
	questionnaireBackendClient contracts.QuestionnaireBackendClient,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		instance := &catalogUsecase{
			QuestionnaireBackendClient: questionnaireBackendClient,
			RedisRepository:            redisRepository,
			CacheTTL:                   cacheTTL,
			Log:                        logger,
		}
		catalogUsecaseInstance = instance
	})
	return catalogUsecaseInstance
}

// Load fetches the ordered questionnaire definitions, serving from the Redis
// cache when warm. A backend failure surfaces as CatalogUnavailable without
// retrying; the caller re-invokes.
func (uc *catalogUsecase) Load(ctx context.Context) ([]models.QuestionnaireDefinition, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if cached := uc.fromCache(ctx); cached != nil {
		uc.Log.Debug("catalogUsecase.Load served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCatalogCountKey, len(cached)),
		)
		return cached, nil
	}

	dtos, err := uc.QuestionnaireBackendClient.FindQuestionnaires(ctx)
	if err != nil {
		uc.Log.Error("catalogUsecase.Load error fetching questionnaires",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCatalogUnavailable(err)
	}
	if len(dtos) == 0 {
		return nil, exceptions.ErrCatalogEmpty()
	}

	definitions := make([]models.QuestionnaireDefinition, 0, len(dtos))
	for _, dto := range dtos {
		definition, err := mapQuestionnaire(dto)
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}

	uc.toCache(ctx, definitions)

	uc.Log.Info("catalogUsecase.Load fetched catalog",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCatalogCountKey, len(definitions)),
	)
	return definitions, nil
}

func (uc *catalogUsecase) fromCache(ctx context.Context) []models.QuestionnaireDefinition {
	raw, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyCatalogCache)
	if err != nil || raw == "" {
		return nil
	}
	var definitions []models.QuestionnaireDefinition
	if err := json.Unmarshal([]byte(raw), &definitions); err != nil {
		return nil
	}
	if len(definitions) == 0 {
		return nil
	}
	return definitions
}

func (uc *catalogUsecase) toCache(ctx context.Context, definitions []models.QuestionnaireDefinition) {
	// Cache failures only cost the next caller a backend round trip.
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyCatalogCache, definitions, uc.CacheTTL); err != nil {
		uc.Log.Warn("catalogUsecase.toCache error caching catalog", zap.Error(err))
	}
}

func mapQuestionnaire(dto backend_dto.QuestionnaireDTO) (models.QuestionnaireDefinition, error) {
	questionnaireType := models.QuestionnaireType(dto.Type)
	if !questionnaireType.Valid() {
		return models.QuestionnaireDefinition{}, exceptions.ErrUnknownQuestionnaire(dto.Type)
	}
	questions := make([]models.Question, 0, len(dto.Questions))
	for _, question := range dto.Questions {
		questions = append(questions, models.Question{
			Number:          question.Number,
			Text:            question.Text,
			IsReverseScored: question.IsReverseScored,
			IsCritical:      question.IsCritical,
		})
	}
	return models.QuestionnaireDefinition{
		Type:      questionnaireType,
		Questions: questions,
	}, nil
}
