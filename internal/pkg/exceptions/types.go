package exceptions

import (
	"fmt"
	"psyeval-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Backend transport errors.
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeBackendResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevDecodeBackendResponse, resource))
	}
	ErrBackendStatusCode = func(statusCode int, resource string) *CustomError {
		clientMessage := constvars.ErrClientBackendUnavailable
		if statusCode == constvars.StatusNotFound {
			clientMessage = constvars.ErrClientSessionNotFound
		}
		return BuildNewCustomError(nil, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendStatusCode, statusCode, resource))
	}

	// Workflow errors.
	ErrCatalogUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientCatalogUnavailable, "catalog fetch failed")
	}
	ErrCatalogEmpty = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusServiceUnavailable, constvars.ErrClientCatalogUnavailable, constvars.ErrDevCatalogEmpty)
	}
	ErrWorkflowNotFound = func(workflowID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientWorkflowNotFound, fmt.Sprintf("workflow %s not found", workflowID))
	}
	ErrWorkflowWrongStep = func(workflowID, step string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientWrongWorkflowStep, fmt.Sprintf(constvars.ErrDevWorkflowStep, workflowID, step))
	}
	ErrNoResumableSession = func(sessionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoResumableSession, fmt.Sprintf(constvars.ErrDevSessionNotInProgress, sessionID))
	}
	ErrConflictingActiveSession = func(patientID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientConflictingSession, fmt.Sprintf("patient %s has an IN_PROGRESS session", patientID))
	}
	ErrNoPendingDecision = func(workflowID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientNoPendingDecision, fmt.Sprintf("workflow %s has no parked resume candidate", workflowID))
	}
	ErrPatientNotFound = func(patientID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf("patient %s not found", patientID))
	}
	ErrSessionNotFound = func(sessionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientSessionNotFound, fmt.Sprintf("session %s not found", sessionID))
	}
	ErrOutOfRangeValue = func(value, scaleMax int, questionnaireType string, questionNumber int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientAnswerOutOfRange, fmt.Sprintf(constvars.ErrDevAnswerOutOfRange, value, scaleMax, questionnaireType, questionNumber))
	}
	ErrUnknownQuestionnaire = func(questionnaireType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownQuestionnaire, questionnaireType))
	}
	ErrIncompleteAnswers = func(questionnaireType string, answered, total int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientAnswersIncomplete, fmt.Sprintf("%s has %d of %d answers", questionnaireType, answered, total))
	}
	ErrAnswersFrozen = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientWrongWorkflowStep, constvars.ErrDevAnswersFrozen)
	}
	ErrSubmissionRejected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientSubmissionRejected, "backend rejected answer set")
	}
	ErrTransientSubmission = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSubmissionTransient, "transient submission failure")
	}
	ErrResultNotReady = func(sessionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientResultNotReady, fmt.Sprintf("session %s has no materialized result", sessionID))
	}

	// Auth errors.
	ErrAuthTokenMissing = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrAuthTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenInvalid)
	}

	// Infrastructure errors.
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoInsert)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoUpdate)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFind)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoIterate)
	}
	ErrQueuePublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevQueuePublish)
	}
	ErrQueueNotConfirmed = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevQueueNotConfirmed)
	}
	ErrArchivePut = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevArchivePut)
	}
)
