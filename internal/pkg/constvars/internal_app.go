package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_PRACTITIONER_ID_KEY      contextKey = "practitioner_id"
)

// Questionnaire types in administration order. The catalog endpoint returns the
// same order; the workflow cursor depends on it.
const (
	QuestionnaireTypeGAD7  = "GAD7"
	QuestionnaireTypePHQ9  = "PHQ9"
	QuestionnaireTypePSS10 = "PSS10"
)

const (
	ScaleMaxGAD7  = 3
	ScaleMaxPHQ9  = 3
	ScaleMaxPSS10 = 4
)

// Assessment session statuses as the backend reports them.
const (
	SessionStatusInProgress = "IN_PROGRESS"
	SessionStatusCompleted  = "COMPLETED"
	SessionStatusCancelled  = "CANCELLED"
)

// Remote processing states.
const (
	ProcessingStateProcessing = "PROCESSING"
	ProcessingStateCompleted  = "COMPLETED"
	ProcessingStateError      = "ERROR"
)

// Workflow steps.
const (
	WorkflowStepSelectingPatient = "SELECTING_PATIENT"
	WorkflowStepAnswering        = "ANSWERING"
	WorkflowStepReadyToSubmit    = "READY_TO_SUBMIT"
	WorkflowStepSubmitting       = "SUBMITTING"
	WorkflowStepAwaitingResult   = "AWAITING_RESULT"
	WorkflowStepResultReady      = "RESULT_READY"
	WorkflowStepFailed           = "FAILED"
)

// Failure kinds carried by a FAILED workflow.
const (
	FailureKindCatalogUnavailable = "CATALOG_UNAVAILABLE"
	FailureKindProcessingError    = "PROCESSING_ERROR"
	FailureKindResultsDelayed     = "RESULTS_DELAYED"
	FailureKindResultFetch        = "RESULT_FETCH_FAILED"
	FailureKindSessionVanished    = "SESSION_VANISHED"
)

// Resume decisions.
const (
	ResumeDecisionResume = "resume"
	ResumeDecisionAbort  = "abort"
)

const (
	RedisKeyCatalogCache   = "psyeval:catalog"
	RedisKeyPatientLockFmt = "psyeval:patient-session-lock:%s"
)

const (
	MongoCollectionWorkflows = "workflow_instances"
)

const (
	EventAssessmentCompleted = "assessment.completed"
	EventAssessmentFailed    = "assessment.failed"
	EventAssessmentDelayed   = "assessment.delayed"
)

const (
	ArchiveObjectNameFmt    = "results/%s.json"
	ArchiveObjectContentTyp = "application/json"
)

const AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
