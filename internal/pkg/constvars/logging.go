package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRequestKey        = "request"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingWorkflowIDKey     = "workflow_id"
	LoggingSessionIDKey      = "session_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingPractitionerIDKey = "practitioner_id"
	LoggingStepKey           = "step"
	LoggingQuestionnaireKey  = "questionnaire_type"
	LoggingQuestionNumberKey = "question_number"
	LoggingAttemptKey        = "attempt"
	LoggingProgressKey       = "progress_percent"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingEventKey          = "event"
	LoggingQueueKey          = "queue"
	LoggingBucketKey         = "bucket"
	LoggingObjectNameKey     = "object_name"
	LoggingCatalogCountKey   = "questionnaire_count"
	LoggingSessionCountKey   = "session_count"
	LoggingPatientCountKey   = "patient_count"
	LoggingWorkflowCountKey  = "workflow_count"
)
