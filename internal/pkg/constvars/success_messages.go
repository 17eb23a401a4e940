package constvars

const (
	WorkflowStartedSuccessMessage  = "Successfully started assessment workflow"
	WorkflowSnapshotSuccessMessage = "Successfully fetched assessment workflow"
	WorkflowPatientsSuccessMessage = "Successfully fetched selectable patients"
	WorkflowSelectSuccessMessage   = "Successfully selected patient"
	WorkflowDecisionSuccessMessage = "Successfully applied resume decision"
	WorkflowAnswerSuccessMessage   = "Successfully recorded answer"
	WorkflowBackSuccessMessage     = "Successfully moved to the previous question"
	WorkflowSubmitSuccessMessage   = "Successfully submitted answers"
	WorkflowTeardownSuccessMessage = "Successfully closed assessment workflow"
	WorkflowHistorySuccessMessage  = "Successfully fetched workflow history"
	SessionDetailSuccessMessage    = "Successfully fetched session detail"
	SessionListSuccessMessage      = "Successfully fetched sessions"
)
