package constvars

// Client-facing messages. Kept generic on purpose, details stay in DevMessage.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"

	ErrClientCatalogUnavailable  = "The questionnaire catalog is currently unavailable"
	ErrClientWorkflowNotFound    = "Assessment workflow not found"
	ErrClientWorkflowFinished    = "This assessment workflow has already finished"
	ErrClientNoResumableSession  = "The requested session cannot be resumed"
	ErrClientConflictingSession  = "This patient already has an assessment in progress"
	ErrClientNoPendingDecision   = "There is no pending resume decision for this workflow"
	ErrClientAnswerOutOfRange    = "The answer value is outside the questionnaire scale"
	ErrClientAnswersIncomplete   = "Not every question has been answered yet"
	ErrClientNotReadyToSubmit    = "The workflow is not ready to submit answers"
	ErrClientSubmissionRejected  = "The assessment backend rejected the submitted answers"
	ErrClientSubmissionTransient = "The submission could not be delivered, please try again"
	ErrClientResultNotReady      = "The assessment result is not available yet"
	ErrClientSessionNotFound     = "Assessment session not found"
	ErrClientPatientNotFound     = "Patient not found"
	ErrClientNoPatientSelected   = "No patient has been selected for this workflow"
	ErrClientWrongWorkflowStep   = "This operation is not valid in the current workflow step"
	ErrClientBackendUnavailable  = "The assessment backend is currently unavailable"
	ErrClientNothingToNavigate   = "There is no previous question to go back to"
)

// Developer messages.
const (
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON request body"
	ErrDevCannotMarshalJSON      = "cannot marshal value to JSON"
	ErrDevCreateHTTPRequest      = "cannot build HTTP request to assessment backend"
	ErrDevSendHTTPRequest        = "cannot send HTTP request to assessment backend"
	ErrDevDecodeBackendResponse  = "cannot decode assessment backend response for %s"
	ErrDevBackendStatusCode      = "assessment backend returned status %d for %s"
	ErrDevServerDeadlineExceeded = "request deadline exceeded"
	ErrDevAuthTokenMissing       = "authorization token missing"
	ErrDevAuthTokenInvalid       = "authorization token invalid"
	ErrDevRedisSet               = "redis SET failed"
	ErrDevRedisGet               = "redis GET failed"
	ErrDevRedisDelete            = "redis DEL failed"
	ErrDevRedisSetNX             = "redis SETNX failed"
	ErrDevMongoInsert            = "mongodb insert failed"
	ErrDevMongoUpdate            = "mongodb update failed"
	ErrDevMongoFind              = "mongodb find failed"
	ErrDevMongoIterate           = "mongodb cursor iteration failed"
	ErrDevQueuePublish           = "rabbitmq publish failed"
	ErrDevQueueNotConfirmed      = "rabbitmq publish was not confirmed by broker"
	ErrDevArchivePut             = "minio object upload failed"
	ErrDevCatalogEmpty           = "assessment backend returned an empty questionnaire catalog"
	ErrDevUnknownQuestionnaire   = "unknown questionnaire type %q"
	ErrDevAnswerOutOfRange       = "answer value %d outside [0,%d] for %s question %d"
	ErrDevSessionNotInProgress   = "session %s is not IN_PROGRESS"
	ErrDevWorkflowStep           = "workflow %s is in step %s"
	ErrDevAnswersFrozen          = "answers are frozen after submission"
	ErrDevLockNotAcquired        = "patient session lock not acquired for patient %s"
)
