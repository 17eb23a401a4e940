package workflow

import (
	"sync"
	"time"

	"psyeval-service/internal/app/models"
	"psyeval-service/internal/app/services/core/answers"
	"psyeval-service/internal/app/services/core/polling"
	"psyeval-service/internal/pkg/dto/responses"
)

// Instance is the in-memory state of one assessment workflow. All access
// goes through the owning usecase, which holds mu for the duration of each
// operation; the polling callbacks take the same lock, so a scheduler firing
// concurrently with an HTTP call never observes a half-applied transition.
type Instance struct {
	mu sync.Mutex

	WorkflowID     string
	PractitionerID string
	Step           models.WorkflowStep
	Catalog        []models.QuestionnaireDefinition

	Patient       *models.Patient
	Session       *models.AssessmentSession
	Store         *answers.Store
	Cursor        models.Cursor
	PendingResume *models.ResumeCandidate
	Processing    *models.ProcessingStatus
	Result        *models.ResultSet
	Failure       *models.Failure

	scheduler *polling.Scheduler
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newInstance(workflowID, practitionerID string, catalog []models.QuestionnaireDefinition) *Instance {
	now := time.Now()
	return &Instance{
		WorkflowID:     workflowID,
		PractitionerID: practitionerID,
		Step:           models.StepSelectingPatient,
		Catalog:        catalog,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (inst *Instance) touch() {
	inst.UpdatedAt = time.Now()
}

func (inst *Instance) fail(kind, message string) {
	inst.Step = models.StepFailed
	inst.Failure = &models.Failure{Kind: kind, Message: message}
	inst.touch()
}

// cancelScheduler stops any active polling run. Safe on instances that never
// submitted.
func (inst *Instance) cancelScheduler() {
	if inst.scheduler != nil {
		inst.scheduler.Cancel()
	}
}

func (inst *Instance) currentDefinition() *models.QuestionnaireDefinition {
	if inst.Cursor.QuestionnaireIndex >= len(inst.Catalog) {
		return nil
	}
	return &inst.Catalog[inst.Cursor.QuestionnaireIndex]
}

// advance moves the cursor one question forward, crossing questionnaire
// boundaries. Reports false when already at the final question.
func (inst *Instance) advance() bool {
	definition := inst.currentDefinition()
	if definition == nil {
		return false
	}
	if inst.Cursor.QuestionIndex+1 < len(definition.Questions) {
		inst.Cursor.QuestionIndex++
		return true
	}
	if inst.Cursor.QuestionnaireIndex+1 < len(inst.Catalog) {
		inst.Cursor.QuestionnaireIndex++
		inst.Cursor.QuestionIndex = 0
		return true
	}
	return false
}

// retreat moves the cursor one question back, crossing questionnaire
// boundaries. Reports false at the very first question.
func (inst *Instance) retreat() bool {
	if inst.Cursor.QuestionIndex > 0 {
		inst.Cursor.QuestionIndex--
		return true
	}
	if inst.Cursor.QuestionnaireIndex > 0 {
		inst.Cursor.QuestionnaireIndex--
		previous := inst.Catalog[inst.Cursor.QuestionnaireIndex]
		inst.Cursor.QuestionIndex = len(previous.Questions) - 1
		return true
	}
	return false
}

// lastCursor addresses the final question of the final questionnaire.
func (inst *Instance) lastCursor() models.Cursor {
	if len(inst.Catalog) == 0 {
		return models.Cursor{}
	}
	lastQuestionnaire := len(inst.Catalog) - 1
	return models.Cursor{
		QuestionnaireIndex: lastQuestionnaire,
		QuestionIndex:      len(inst.Catalog[lastQuestionnaire].Questions) - 1,
	}
}

func (inst *Instance) progressPercent() int {
	if inst.Store == nil {
		return 0
	}
	total := inst.Store.TotalQuestions()
	if total == 0 {
		return 0
	}
	return inst.Store.TotalAnswered() * 100 / total
}

func (inst *Instance) currentQuestion() *responses.CurrentQuestion {
	if inst.Step != models.StepAnswering || inst.Store == nil {
		return nil
	}
	definition := inst.currentDefinition()
	if definition == nil || inst.Cursor.QuestionIndex >= len(definition.Questions) {
		return nil
	}
	question := definition.Questions[inst.Cursor.QuestionIndex]
	current := &responses.CurrentQuestion{
		QuestionnaireType: definition.Type,
		Question:          question,
		Options:           definition.Type.LikertOptions(),
	}
	if value, ok := inst.Store.Get(definition.Type, question.Number); ok {
		current.RecordedValue = &value
	}
	return current
}

// snapshot renders the externally visible state. Caller holds mu.
func (inst *Instance) snapshot() *responses.WorkflowSnapshot {
	snapshot := &responses.WorkflowSnapshot{
		WorkflowID:      inst.WorkflowID,
		PractitionerID:  inst.PractitionerID,
		Step:            inst.Step,
		Patient:         inst.Patient,
		Session:         inst.Session,
		CurrentQuestion: inst.currentQuestion(),
		ProgressPercent: inst.progressPercent(),
		PendingResume:   inst.PendingResume,
		Processing:      inst.Processing,
		Result:          inst.Result,
		Failure:         inst.Failure,
	}
	if inst.Step == models.StepAnswering {
		cursor := inst.Cursor
		snapshot.Cursor = &cursor
	}
	return snapshot
}

// toRecord renders the audit snapshot persisted on step transitions.
func (inst *Instance) toRecord() *models.WorkflowRecord {
	record := &models.WorkflowRecord{
		WorkflowID:     inst.WorkflowID,
		PractitionerID: inst.PractitionerID,
		Step:           string(inst.Step),
		CreatedAt:      inst.CreatedAt,
		UpdatedAt:      inst.UpdatedAt,
	}
	if inst.Patient != nil {
		record.PatientID = inst.Patient.ID
	}
	if inst.Session != nil {
		record.SessionID = inst.Session.ID
	}
	if inst.Failure != nil {
		record.FailureKind = inst.Failure.Kind
	}
	return record
}
