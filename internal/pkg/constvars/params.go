package constvars

const (
	URLParamWorkflowID     = "workflow_id"
	URLParamSessionID      = "session_id"
	URLParamConsultationID = "consultation_id"
)
