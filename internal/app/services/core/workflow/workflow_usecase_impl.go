package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"psyeval-service/internal/app/config"
	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/models"
	"psyeval-service/internal/app/services/core/answers"
	"psyeval-service/internal/app/services/core/polling"
	"psyeval-service/internal/app/services/core/results"
	"psyeval-service/internal/app/services/core/resume"
	"psyeval-service/internal/app/services/core/submission"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/dto/requests"
	"psyeval-service/internal/pkg/dto/responses"
	"psyeval-service/internal/pkg/exceptions"
	"psyeval-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type workflowUsecase struct {
	AssessmentBackendClient contracts.AssessmentBackendClient
	CatalogUsecase          contracts.CatalogUsecase
	LockerService           contracts.LockerService
	WorkflowRepository      contracts.WorkflowRepository
	ResultArchive           contracts.ResultArchive
	EventPublisher          contracts.EventPublisher
	Resolver                *resume.Resolver
	Coordinator             *submission.Coordinator
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger

	registryMutex sync.RWMutex
	registry      map[string]*Instance

	rootCtx    context.Context
	cancelRoot context.CancelFunc
}

var (
	workflowUsecaseInstance contracts.WorkflowUsecase
	onceWorkflowUsecase     sync.Once
)

func NewWorkflowUsecase(
	assessmentBackendClient contracts.AssessmentBackendClient,
	catalogUsecase contracts.CatalogUsecase,
	lockerService contracts.LockerService,
	workflowRepository contracts.WorkflowRepository,
	resultArchive contracts.ResultArchive,
	eventPublisher contracts.EventPublisher,
	resolver *resume.Resolver,
	coordinator *submission.Coordinator,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.WorkflowUsecase {
	onceWorkflowUsecase.Do(func() {
		rootCtx, cancelRoot := context.WithCancel(context.Background())
		instance := &workflowUsecase{
			AssessmentBackendClient: assessmentBackendClient,
			CatalogUsecase:          catalogUsecase,
			LockerService:           lockerService,
			WorkflowRepository:      workflowRepository,
			ResultArchive:           resultArchive,
			EventPublisher:          eventPublisher,
			Resolver:                resolver,
			Coordinator:             coordinator,
			InternalConfig:          internalConfig,
			Log:                     logger,
			registry:                make(map[string]*Instance),
			rootCtx:                 rootCtx,
			cancelRoot:              cancelRoot,
		}
		workflowUsecaseInstance = instance
	})
	return workflowUsecaseInstance
}

// Start opens a new workflow instance for the practitioner. With a session id
// in the request the instance rehydrates that session; with a patient id it
// behaves as if the patient were selected immediately; otherwise it waits in
// SELECTING_PATIENT.
func (uc *workflowUsecase) Start(ctx context.Context, practitionerID string, request *requests.StartWorkflow) (*responses.WorkflowSnapshot, error) {
	requestID := utils.RequestIDFromContext(ctx)
	workflowID := utils.GenerateWorkflowID()

	catalog, err := uc.CatalogUsecase.Load(ctx)
	if err != nil {
		// The instance still exists so the operator can inspect the failure.
		inst := newInstance(workflowID, practitionerID, nil)
		inst.fail(constvars.FailureKindCatalogUnavailable, err.Error())
		uc.register(inst)
		uc.persistSnapshot(ctx, inst)
		uc.Log.Error("workflowUsecase.Start catalog unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWorkflowIDKey, workflowID),
			zap.Error(err),
		)
		return inst.snapshot(), nil
	}

	inst := newInstance(workflowID, practitionerID, catalog)
	uc.register(inst)

	inst.mu.Lock()
	defer inst.mu.Unlock()

	switch {
	case request != nil && request.SessionID != "":
		point, err := uc.Resolver.ResolveExplicit(ctx, request.SessionID, catalog)
		if err != nil {
			uc.unregister(workflowID)
			return nil, err
		}
		if err := uc.attachResumePoint(ctx, inst, point); err != nil {
			uc.unregister(workflowID)
			return nil, err
		}
	case request != nil && request.PatientID != "":
		if err := uc.selectPatientLocked(ctx, inst, request.PatientID); err != nil {
			uc.unregister(workflowID)
			return nil, err
		}
	}

	uc.persistSnapshot(ctx, inst)
	uc.Log.Info("workflowUsecase.Start opened workflow",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.String(constvars.LoggingStepKey, string(inst.Step)),
	)
	return inst.snapshot(), nil
}

func (uc *workflowUsecase) Snapshot(ctx context.Context, workflowID string) (*responses.WorkflowSnapshot, error) {
	inst, err := uc.find(workflowID)
	if err != nil {
		return nil, err
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.snapshot(), nil
}

func (uc *workflowUsecase) SelectablePatients(ctx context.Context, workflowID string) ([]models.Patient, error) {
	inst, err := uc.find(workflowID)
	if err != nil {
		return nil, err
	}
	inst.mu.Lock()
	practitionerID := inst.PractitionerID
	step := inst.Step
	inst.mu.Unlock()

	if step != models.StepSelectingPatient {
		return nil, exceptions.ErrWorkflowWrongStep(workflowID, string(step))
	}
	return uc.Resolver.SelectablePatients(ctx, practitionerID)
}

// SelectPatient binds the workflow to a patient. When the patient already has
// an IN_PROGRESS session the decision is parked instead of creating a second
// one.
func (uc *workflowUsecase) SelectPatient(ctx context.Context, workflowID, patientID string) (*responses.WorkflowSnapshot, error) {
	inst, err := uc.find(workflowID)
	if err != nil {
		return nil, err
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()

	if inst.Step != models.StepSelectingPatient {
		return nil, exceptions.ErrWorkflowWrongStep(workflowID, string(inst.Step))
	}
	if err := uc.selectPatientLocked(ctx, inst, patientID); err != nil {
		return nil, err
	}
	uc.persistSnapshot(ctx, inst)
	return inst.snapshot(), nil
}

// selectPatientLocked runs the conflict check and session creation under the
// per-patient Redis lock. The lock narrows the window between the check and
// the create; the backend remains authoritative.
func (uc *workflowUsecase) selectPatientLocked(ctx context.Context, inst *Instance, patientID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	lockKey := fmt.Sprintf(constvars.RedisKeyPatientLockFmt, patientID)
	lockTTL := time.Duration(uc.InternalConfig.Workflow.PatientLockTTLInSecond) * time.Second

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrConflictingActiveSession(patientID)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("workflowUsecase.selectPatientLocked unlock failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	candidate, err := uc.Resolver.CheckPatient(ctx, patientID)
	if err != nil {
		return err
	}
	if candidate != nil {
		inst.PendingResume = candidate
		inst.Patient = &candidate.Patient
		inst.touch()
		uc.Log.Info("workflowUsecase.selectPatientLocked parked resume decision",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWorkflowIDKey, inst.WorkflowID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.String(constvars.LoggingSessionIDKey, candidate.Session.ID),
		)
		return nil
	}

	record, err := uc.AssessmentBackendClient.CreateSession(ctx, &backend_dto.CreateSessionRequest{
		PatientID:      patientID,
		PractitionerID: inst.PractitionerID,
	})
	if err != nil {
		return err
	}
	session := results.ToModelSession(record)

	patient, err := uc.Resolver.PatientBackendClient.FindPatientByID(ctx, patientID)
	if err != nil {
		return err
	}

	inst.Patient = &models.Patient{ID: patient.ID, DisplayName: patient.DisplayName}
	inst.Session = &session
	inst.Store = answers.NewStore(inst.Catalog)
	inst.Cursor = models.Cursor{}
	inst.Step = models.StepAnswering
	inst.touch()

	uc.Log.Info("workflowUsecase.selectPatientLocked created session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, inst.WorkflowID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return nil
}

// ApplyResumeDecision consumes a parked resume candidate. Resume rehydrates
// the existing session; abort discards the candidate and returns the
// workflow to patient selection.
func (uc *workflowUsecase) ApplyResumeDecision(ctx context.Context, workflowID, decision string) (*responses.WorkflowSnapshot, error) {
	inst, err := uc.find(workflowID)
	if err != nil {
		return nil, err
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()

	if inst.PendingResume == nil {
		return nil, exceptions.ErrNoPendingDecision(workflowID)
	}

	candidate := inst.PendingResume
	inst.PendingResume = nil

	if decision == constvars.ResumeDecisionAbort {
		inst.Patient = nil
		inst.touch()
		uc.persistSnapshot(ctx, inst)
		return inst.snapshot(), nil
	}

	point, err := uc.Resolver.Rehydrate(ctx, candidate.Session, inst.Catalog)
	if err != nil {
		inst.PendingResume = candidate
		return nil, err
	}
	if err := uc.attachResumePoint(ctx, inst, point); err != nil {
		inst.PendingResume = candidate
		return nil, err
	}
	uc.persistSnapshot(ctx, inst)
	return inst.snapshot(), nil
}

// attachResumePoint binds a rehydrated session to the instance. Caller holds
// the instance lock.
func (uc *workflowUsecase) attachResumePoint(ctx context.Context, inst *Instance, point *resume.ResumePoint) error {
	session := point.Session
	inst.Session = &session
	inst.Store = point.Store
	inst.Cursor = point.Cursor

	if inst.Patient == nil {
		record, err := uc.Resolver.PatientBackendClient.FindPatientByID(ctx, session.PatientID)
		if err != nil {
			return err
		}
		inst.Patient = &models.Patient{ID: record.ID, DisplayName: record.DisplayName, HasActiveSession: true}
	}

	if point.ReadyToSubmit {
		inst.Step = models.StepReadyToSubmit
	} else {
		inst.Step = models.StepAnswering
	}
	inst.touch()
	return nil
}

// RecordAnswer stores the value for the question under the cursor and moves
// forward. Recording the last missing answer submits the session
// automatically.
func (uc *workflowUsecase) RecordAnswer(ctx context.Context, workflowID string, value int) (*responses.WorkflowSnapshot, error) {
	inst, err := uc.find(workflowID)
	if err != nil {
		return nil, err
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()

	if inst.Step != models.StepAnswering {
		return nil, exceptions.ErrWorkflowWrongStep(workflowID, string(inst.Step))
	}
	definition := inst.currentDefinition()
	if definition == nil {
		return nil, exceptions.ErrWorkflowWrongStep(workflowID, string(inst.Step))
	}
	question := definition.Questions[inst.Cursor.QuestionIndex]

	if err := inst.Store.Record(definition.Type, question.Number, value); err != nil {
		return nil, err
	}
	inst.touch()

	uc.Log.Debug("workflowUsecase.RecordAnswer recorded answer",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
		zap.String(constvars.LoggingQuestionnaireKey, string(definition.Type)),
		zap.Int(constvars.LoggingQuestionNumberKey, question.Number),
	)

	if inst.Store.IsSessionComplete() {
		if err := uc.submitLocked(ctx, inst); err != nil {
			uc.persistSnapshot(ctx, inst)
			return nil, err
		}
		uc.persistSnapshot(ctx, inst)
		return inst.snapshot(), nil
	}

	inst.advance()
	return inst.snapshot(), nil
}

// StepBack moves the cursor to the previous question. At the very first
// question it is a no-op. From READY_TO_SUBMIT it reopens the final question.
func (uc *workflowUsecase) StepBack(ctx context.Context, workflowID string) (*responses.WorkflowSnapshot, error) {
	inst, err := uc.find(workflowID)
	if err != nil {
		return nil, err
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()

	switch inst.Step {
	case models.StepAnswering:
		inst.retreat()
	case models.StepReadyToSubmit:
		inst.Step = models.StepAnswering
		inst.Cursor = inst.lastCursor()
	default:
		return nil, exceptions.ErrWorkflowWrongStep(workflowID, string(inst.Step))
	}
	inst.touch()
	return inst.snapshot(), nil
}

// Submit ships the complete answer set. Used for the READY_TO_SUBMIT resume
// path and for retrying after a failed automatic submission.
func (uc *workflowUsecase) Submit(ctx context.Context, workflowID string) (*responses.WorkflowSnapshot, error) {
	inst, err := uc.find(workflowID)
	if err != nil {
		return nil, err
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()

	if inst.Step != models.StepReadyToSubmit && inst.Step != models.StepAnswering {
		return nil, exceptions.ErrWorkflowWrongStep(workflowID, string(inst.Step))
	}
	if err := uc.submitLocked(ctx, inst); err != nil {
		uc.persistSnapshot(ctx, inst)
		return nil, err
	}
	uc.persistSnapshot(ctx, inst)
	return inst.snapshot(), nil
}

// submitLocked validates, submits, and on success hands the session to a
// polling scheduler. Any submission failure returns the instance to its
// entry step with the answers intact. Caller holds the instance lock.
func (uc *workflowUsecase) submitLocked(ctx context.Context, inst *Instance) error {
	if inst.Session == nil {
		return exceptions.ErrWorkflowWrongStep(inst.WorkflowID, string(inst.Step))
	}
	entryStep := inst.Step
	inst.Step = models.StepSubmitting

	statusDTO, err := uc.Coordinator.Submit(ctx, inst.Session.ID, inst.Store)
	if err != nil {
		inst.Step = entryStep
		return err
	}

	inst.Processing = &models.ProcessingStatus{
		SessionID:       inst.Session.ID,
		State:           models.ParseProcessingState(statusDTO.State),
		ProgressPercent: statusDTO.ProgressPercent,
		Message:         statusDTO.Message,
	}
	inst.Step = models.StepAwaitingResult
	inst.touch()

	uc.startPolling(inst)
	return nil
}

// startPolling wires a scheduler for the instance's session. The scheduler
// runs on the usecase root context so it outlives the submitting HTTP
// request. Caller holds the instance lock.
func (uc *workflowUsecase) startPolling(inst *Instance) {
	pollingConfig := uc.InternalConfig.Polling
	sessionID := inst.Session.ID

	scheduler := polling.NewScheduler(
		sessionID,
		time.Duration(pollingConfig.InitialDelayInSecond)*time.Second,
		time.Duration(pollingConfig.IntervalInSecond)*time.Second,
		pollingConfig.MaxAttempts,
		uc.Log,
	)
	scheduler.FetchStatus = func(ctx context.Context) (*backend_dto.ProcessingStatusDTO, error) {
		return uc.AssessmentBackendClient.FindProcessingStatus(ctx, sessionID)
	}
	scheduler.FetchResult = func(ctx context.Context) (*backend_dto.ResultPayload, error) {
		return uc.AssessmentBackendClient.FindResults(ctx, sessionID)
	}
	scheduler.OnStatus = func(status models.ProcessingStatus) {
		inst.mu.Lock()
		defer inst.mu.Unlock()
		inst.Processing = &status
		inst.touch()
	}
	scheduler.OnTerminal = func(outcome polling.Outcome) {
		uc.handlePollOutcome(inst, outcome)
	}

	inst.scheduler = scheduler
	scheduler.Start(uc.rootCtx)
}

func (uc *workflowUsecase) handlePollOutcome(inst *Instance, outcome polling.Outcome) {
	inst.mu.Lock()
	defer inst.mu.Unlock()

	if inst.Step != models.StepAwaitingResult {
		return
	}
	if outcome.Status != nil {
		inst.Processing = outcome.Status
	}

	switch outcome.Kind {
	case polling.OutcomeCompleted:
		result := results.Normalize(outcome.Result)
		if result.SessionID == "" {
			result.SessionID = inst.Session.ID
		}
		inst.Result = result
		inst.Step = models.StepResultReady
		inst.touch()
		uc.archiveResult(inst, result)
		uc.publishEvent(inst, constvars.EventAssessmentCompleted, "")
	case polling.OutcomeFailed:
		message := ""
		if outcome.Status != nil {
			message = outcome.Status.Message
		}
		inst.fail(constvars.FailureKindProcessingError, message)
		uc.publishEvent(inst, constvars.EventAssessmentFailed, message)
	case polling.OutcomeTimedOut:
		inst.fail(constvars.FailureKindResultsDelayed, "scoring did not finish within the polling budget")
		uc.publishEvent(inst, constvars.EventAssessmentDelayed, "")
	case polling.OutcomeSessionVanished:
		inst.fail(constvars.FailureKindSessionVanished, "session no longer exists on the backend")
		uc.publishEvent(inst, constvars.EventAssessmentFailed, "session vanished")
	case polling.OutcomeResultFetchFailed:
		inst.fail(constvars.FailureKindResultFetch, "results computed but could not be fetched")
		uc.publishEvent(inst, constvars.EventAssessmentFailed, "result fetch failed")
	}

	uc.persistSnapshot(uc.rootCtx, inst)
	uc.Log.Info("workflowUsecase.handlePollOutcome workflow terminal",
		zap.String(constvars.LoggingWorkflowIDKey, inst.WorkflowID),
		zap.String(constvars.LoggingSessionIDKey, inst.Session.ID),
		zap.String(constvars.LoggingStepKey, string(inst.Step)),
		zap.Int(constvars.LoggingAttemptKey, inst.scheduler.Attempts()),
	)
}

// History lists the practitioner's persisted workflow snapshots, newest
// first. Torn-down instances stay visible here through their last snapshot.
func (uc *workflowUsecase) History(ctx context.Context, practitionerID string) ([]models.WorkflowRecord, error) {
	records, err := uc.WorkflowRepository.FindByPractitioner(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	uc.Log.Info("workflowUsecase.History listed workflows",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.Int(constvars.LoggingWorkflowCountKey, len(records)),
	)
	return records, nil
}

// Teardown drops the instance and cancels any in-flight polling. Calling it
// twice, or for a finished workflow, is harmless.
func (uc *workflowUsecase) Teardown(ctx context.Context, workflowID string) error {
	inst, err := uc.find(workflowID)
	if err != nil {
		return err
	}
	inst.mu.Lock()
	inst.cancelScheduler()
	inst.touch()
	uc.persistSnapshot(ctx, inst)
	inst.mu.Unlock()

	uc.unregister(workflowID)
	uc.Log.Info("workflowUsecase.Teardown removed workflow",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
	)
	return nil
}

// Shutdown cancels every scheduler. Instances are not persisted beyond their
// latest audit snapshot.
func (uc *workflowUsecase) Shutdown() {
	uc.cancelRoot()
	uc.registryMutex.Lock()
	defer uc.registryMutex.Unlock()
	for _, inst := range uc.registry {
		inst.cancelScheduler()
	}
	uc.registry = make(map[string]*Instance)
}

func (uc *workflowUsecase) register(inst *Instance) {
	uc.registryMutex.Lock()
	defer uc.registryMutex.Unlock()
	uc.registry[inst.WorkflowID] = inst
}

func (uc *workflowUsecase) unregister(workflowID string) {
	uc.registryMutex.Lock()
	defer uc.registryMutex.Unlock()
	delete(uc.registry, workflowID)
}

func (uc *workflowUsecase) find(workflowID string) (*Instance, error) {
	uc.registryMutex.RLock()
	defer uc.registryMutex.RUnlock()
	inst, ok := uc.registry[workflowID]
	if !ok {
		return nil, exceptions.ErrWorkflowNotFound(workflowID)
	}
	return inst, nil
}

// persistSnapshot writes the audit record. Failures are logged and swallowed;
// the in-memory instance is the live source of truth.
func (uc *workflowUsecase) persistSnapshot(ctx context.Context, inst *Instance) {
	if err := uc.WorkflowRepository.SaveSnapshot(ctx, inst.toRecord()); err != nil {
		uc.Log.Warn("workflowUsecase.persistSnapshot failed",
			zap.String(constvars.LoggingWorkflowIDKey, inst.WorkflowID),
			zap.Error(err),
		)
	}
}

// archiveResult stores the normalized result in object storage. Best effort.
func (uc *workflowUsecase) archiveResult(inst *Instance, result *models.ResultSet) {
	if err := uc.ResultArchive.StoreResult(uc.rootCtx, result); err != nil {
		uc.Log.Warn("workflowUsecase.archiveResult failed",
			zap.String(constvars.LoggingWorkflowIDKey, inst.WorkflowID),
			zap.String(constvars.LoggingSessionIDKey, result.SessionID),
			zap.Error(err),
		)
	}
}

func (uc *workflowUsecase) publishEvent(inst *Instance, event, message string) {
	assessmentEvent := &contracts.AssessmentEvent{
		Event:          event,
		WorkflowID:     inst.WorkflowID,
		PractitionerID: inst.PractitionerID,
		Message:        message,
	}
	if inst.Session != nil {
		assessmentEvent.SessionID = inst.Session.ID
	}
	if inst.Patient != nil {
		assessmentEvent.PatientID = inst.Patient.ID
	}
	if err := uc.EventPublisher.Publish(uc.rootCtx, assessmentEvent); err != nil {
		uc.Log.Warn("workflowUsecase.publishEvent failed",
			zap.String(constvars.LoggingWorkflowIDKey, inst.WorkflowID),
			zap.String(constvars.LoggingEventKey, event),
			zap.Error(err),
		)
	}
}
