package workflow

import (
	"context"
	"sync"
	"testing"
	"time"

	"psyeval-service/internal/app/config"
	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/models"
	"psyeval-service/internal/app/services/core/resume"
	"psyeval-service/internal/app/services/core/submission"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/dto/requests"
	"psyeval-service/internal/pkg/dto/responses"
	"psyeval-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeBackend struct {
	mu sync.Mutex

	sessionsByPatient map[string][]backend_dto.SessionRecord
	savedAnswers      map[string]*backend_dto.AnswerSet

	submitCalls   int
	submitErr     error
	lastSubmitted *backend_dto.AnswerSet

	statusSequence []backend_dto.ProcessingStatusDTO
	statusIndex    int
}

func (f *fakeBackend) CreateSession(ctx context.Context, request *backend_dto.CreateSessionRequest) (*backend_dto.SessionRecord, error) {
	return &backend_dto.SessionRecord{
		ID:             "sess-new",
		PatientID:      request.PatientID,
		PractitionerID: request.PractitionerID,
		CreatedAt:      time.Now(),
		Status:         constvars.SessionStatusInProgress,
	}, nil
}

func (f *fakeBackend) FindSessionByID(ctx context.Context, sessionID string) (*backend_dto.SessionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, records := range f.sessionsByPatient {
		for i := range records {
			if records[i].ID == sessionID {
				return &records[i], nil
			}
		}
	}
	return nil, exceptions.ErrBackendStatusCode(constvars.StatusNotFound, "session")
}

func (f *fakeBackend) FindSessionsByPractitioner(ctx context.Context, practitionerID string) ([]backend_dto.SessionRecord, error) {
	return nil, nil
}

func (f *fakeBackend) FindSessionsByPatient(ctx context.Context, patientID string) ([]backend_dto.SessionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessionsByPatient[patientID], nil
}

func (f *fakeBackend) FindSessionByConsultation(ctx context.Context, consultationID string) (*backend_dto.SessionRecord, error) {
	return nil, exceptions.ErrBackendStatusCode(constvars.StatusNotFound, "session")
}

func (f *fakeBackend) FindAnswers(ctx context.Context, sessionID string) (*backend_dto.AnswerSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if saved, ok := f.savedAnswers[sessionID]; ok {
		return saved, nil
	}
	return &backend_dto.AnswerSet{}, nil
}

func (f *fakeBackend) SubmitAnswers(ctx context.Context, sessionID string, answers *backend_dto.AnswerSet) (*backend_dto.ProcessingStatusDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	if f.submitErr != nil {
		err := f.submitErr
		f.submitErr = nil
		return nil, err
	}
	f.lastSubmitted = answers
	return &backend_dto.ProcessingStatusDTO{
		SessionID: sessionID,
		State:     constvars.ProcessingStateProcessing,
	}, nil
}

func (f *fakeBackend) FindProcessingStatus(ctx context.Context, sessionID string) (*backend_dto.ProcessingStatusDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.statusSequence) == 0 {
		return &backend_dto.ProcessingStatusDTO{SessionID: sessionID, State: constvars.ProcessingStateProcessing}, nil
	}
	status := f.statusSequence[f.statusIndex]
	if f.statusIndex < len(f.statusSequence)-1 {
		f.statusIndex++
	}
	return &status, nil
}

// FindResults echoes the sums of the submitted answers, the way the scoring
// backend reports raw instrument scores.
func (f *fakeBackend) FindResults(ctx context.Context, sessionID string) (*backend_dto.ResultPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum := func(items []backend_dto.AnswerItem) *float64 {
		total := 0.0
		for _, item := range items {
			total += float64(item.Value)
		}
		return &total
	}
	payload := &backend_dto.ResultPayload{SessionID: sessionID}
	if f.lastSubmitted != nil {
		payload.GAD7Score = sum(f.lastSubmitted.GAD7)
		payload.PHQ9Score = sum(f.lastSubmitted.PHQ9)
		payload.PSS10Score = sum(f.lastSubmitted.PSS10)
	}
	return payload, nil
}

type fakePatientBackend struct{}

func (f *fakePatientBackend) FindPatientsByPractitioner(ctx context.Context, practitionerID string) ([]backend_dto.PatientRecord, error) {
	return []backend_dto.PatientRecord{{ID: "pat-1", DisplayName: "Ada Vega", Active: true}}, nil
}

func (f *fakePatientBackend) FindPatientByID(ctx context.Context, patientID string) (*backend_dto.PatientRecord, error) {
	return &backend_dto.PatientRecord{ID: patientID, DisplayName: "Ada Vega", Active: true}, nil
}

type fakeCatalogUsecase struct {
	err error
}

func (f *fakeCatalogUsecase) Load(ctx context.Context) ([]models.QuestionnaireDefinition, error) {
	if f.err != nil {
		return nil, f.err
	}
	build := func(questionnaireType models.QuestionnaireType, count int) models.QuestionnaireDefinition {
		definition := models.QuestionnaireDefinition{Type: questionnaireType}
		for i := 1; i <= count; i++ {
			definition.Questions = append(definition.Questions, models.Question{Number: i})
		}
		return definition
	}
	return []models.QuestionnaireDefinition{
		build(models.QuestionnaireGAD7, 7),
		build(models.QuestionnairePHQ9, 9),
		build(models.QuestionnairePSS10, 10),
	}, nil
}

type fakeLocker struct {
	mu       sync.Mutex
	locked   []string
	unlocked []string
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locked = append(f.locked, key)
	return true, "lock-value", nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unlocked = append(f.unlocked, key)
	return nil
}

type fakeRepository struct {
	mu      sync.Mutex
	records []models.WorkflowRecord
}

func (f *fakeRepository) SaveSnapshot(ctx context.Context, record *models.WorkflowRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeRepository) FindByPractitioner(ctx context.Context, practitionerID string) ([]models.WorkflowRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	latest := make(map[string]models.WorkflowRecord, len(f.records))
	for _, record := range f.records {
		if record.PractitionerID == practitionerID {
			latest[record.WorkflowID] = record
		}
	}
	found := make([]models.WorkflowRecord, 0, len(latest))
	for _, record := range latest {
		found = append(found, record)
	}
	return found, nil
}

type fakeArchive struct {
	mu     sync.Mutex
	stored []*models.ResultSet
}

func (f *fakeArchive) StoreResult(ctx context.Context, result *models.ResultSet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, result)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*contracts.AssessmentEvent
}

func (f *fakePublisher) Publish(ctx context.Context, event *contracts.AssessmentEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

type testHarness struct {
	usecase   *workflowUsecase
	backend   *fakeBackend
	locker    *fakeLocker
	archive   *fakeArchive
	publisher *fakePublisher
}

func newTestHarness() *testHarness {
	backend := &fakeBackend{
		sessionsByPatient: map[string][]backend_dto.SessionRecord{},
		savedAnswers:      map[string]*backend_dto.AnswerSet{},
	}
	patientBackend := &fakePatientBackend{}
	locker := &fakeLocker{}
	archive := &fakeArchive{}
	publisher := &fakePublisher{}
	logger := zap.NewNop()

	rootCtx, cancelRoot := context.WithCancel(context.Background())
	usecase := &workflowUsecase{
		AssessmentBackendClient: backend,
		CatalogUsecase:          &fakeCatalogUsecase{},
		LockerService:           locker,
		WorkflowRepository:      &fakeRepository{},
		ResultArchive:           archive,
		EventPublisher:          publisher,
		Resolver:                resume.NewResolver(backend, patientBackend, logger),
		Coordinator:             submission.NewCoordinator(backend, logger),
		InternalConfig: &config.InternalConfig{
			Polling:  config.Polling{InitialDelayInSecond: 0, IntervalInSecond: 0, MaxAttempts: 5},
			Workflow: config.Workflow{PatientLockTTLInSecond: 30},
		},
		Log:        logger,
		registry:   make(map[string]*Instance),
		rootCtx:    rootCtx,
		cancelRoot: cancelRoot,
	}
	return &testHarness{
		usecase:   usecase,
		backend:   backend,
		locker:    locker,
		archive:   archive,
		publisher: publisher,
	}
}

func (h *testHarness) startAnswering(t *testing.T) string {
	t.Helper()
	snapshot, err := h.usecase.Start(context.Background(), "pract-1", &requests.StartWorkflow{PatientID: "pat-1"})
	assert.NoError(t, err)
	assert.Equal(t, models.StepAnswering, snapshot.Step)
	return snapshot.WorkflowID
}

func (h *testHarness) waitForStep(t *testing.T, workflowID string, step models.WorkflowStep) *responses.WorkflowSnapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snapshot, err := h.usecase.Snapshot(context.Background(), workflowID)
		assert.NoError(t, err)
		if snapshot.Step == step {
			return snapshot
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("workflow %s never reached step %s", workflowID, step)
	return nil
}

func TestStartWorkflow(t *testing.T) {
	t.Run("Without a patient the workflow waits in SELECTING_PATIENT", func(t *testing.T) {
		h := newTestHarness()

		snapshot, err := h.usecase.Start(context.Background(), "pract-1", &requests.StartWorkflow{})
		assert.NoError(t, err)
		assert.Equal(t, models.StepSelectingPatient, snapshot.Step)
		assert.Nil(t, snapshot.CurrentQuestion)
	})

	t.Run("With a patient the workflow opens a session and starts answering", func(t *testing.T) {
		h := newTestHarness()

		workflowID := h.startAnswering(t)
		snapshot, err := h.usecase.Snapshot(context.Background(), workflowID)
		assert.NoError(t, err)
		assert.Equal(t, "sess-new", snapshot.Session.ID)
		assert.Equal(t, models.QuestionnaireGAD7, snapshot.CurrentQuestion.QuestionnaireType)
		assert.Equal(t, 1, snapshot.CurrentQuestion.Question.Number)
		assert.Len(t, h.locker.locked, 1, "patient lock taken around the conflict check")
		assert.Len(t, h.locker.unlocked, 1, "patient lock released after session creation")
	})

	t.Run("Catalog failure parks the workflow in FAILED", func(t *testing.T) {
		h := newTestHarness()
		h.usecase.CatalogUsecase = &fakeCatalogUsecase{err: exceptions.ErrCatalogUnavailable(assert.AnError)}

		snapshot, err := h.usecase.Start(context.Background(), "pract-1", &requests.StartWorkflow{})
		assert.NoError(t, err)
		assert.Equal(t, models.StepFailed, snapshot.Step)
		assert.Equal(t, constvars.FailureKindCatalogUnavailable, snapshot.Failure.Kind)
	})

	t.Run("Unknown workflow ids are rejected", func(t *testing.T) {
		h := newTestHarness()

		_, err := h.usecase.Snapshot(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestCursorNavigation(t *testing.T) {
	t.Run("Answers advance the cursor across questionnaire boundaries", func(t *testing.T) {
		h := newTestHarness()
		workflowID := h.startAnswering(t)

		var snapshot *responses.WorkflowSnapshot
		var err error
		for i := 0; i < 7; i++ {
			snapshot, err = h.usecase.RecordAnswer(context.Background(), workflowID, 1)
			assert.NoError(t, err)
		}
		assert.Equal(t, models.QuestionnairePHQ9, snapshot.CurrentQuestion.QuestionnaireType)
		assert.Equal(t, 1, snapshot.CurrentQuestion.Question.Number)
	})

	t.Run("StepBack crosses the boundary in reverse and is a no-op at the start", func(t *testing.T) {
		h := newTestHarness()
		workflowID := h.startAnswering(t)

		snapshot, err := h.usecase.StepBack(context.Background(), workflowID)
		assert.NoError(t, err)
		assert.Equal(t, 1, snapshot.CurrentQuestion.Question.Number, "back at the first question stays put")

		for i := 0; i < 7; i++ {
			_, err = h.usecase.RecordAnswer(context.Background(), workflowID, 0)
			assert.NoError(t, err)
		}
		snapshot, err = h.usecase.StepBack(context.Background(), workflowID)
		assert.NoError(t, err)
		assert.Equal(t, models.QuestionnaireGAD7, snapshot.CurrentQuestion.QuestionnaireType)
		assert.Equal(t, 7, snapshot.CurrentQuestion.Question.Number)
		assert.NotNil(t, snapshot.CurrentQuestion.RecordedValue, "revisited questions show the recorded value")
	})

	t.Run("Out-of-range answers are rejected without moving the cursor", func(t *testing.T) {
		h := newTestHarness()
		workflowID := h.startAnswering(t)

		_, err := h.usecase.RecordAnswer(context.Background(), workflowID, 4)
		assert.Error(t, err)

		snapshot, err := h.usecase.Snapshot(context.Background(), workflowID)
		assert.NoError(t, err)
		assert.Equal(t, 1, snapshot.CurrentQuestion.Question.Number)
		assert.Equal(t, 0, snapshot.ProgressPercent)
	})
}

func TestSubmission(t *testing.T) {
	answerEverything := func(t *testing.T, h *testHarness, workflowID string) {
		t.Helper()
		gad7 := []int{0, 1, 2, 3, 0, 1, 2}
		for _, value := range gad7 {
			_, err := h.usecase.RecordAnswer(context.Background(), workflowID, value)
			assert.NoError(t, err)
		}
		for i := 0; i < 9; i++ {
			_, err := h.usecase.RecordAnswer(context.Background(), workflowID, 1)
			assert.NoError(t, err)
		}
		for i := 0; i < 10; i++ {
			_, err := h.usecase.RecordAnswer(context.Background(), workflowID, i%2)
			assert.NoError(t, err)
		}
	}

	t.Run("Incomplete answer sets never reach the backend", func(t *testing.T) {
		h := newTestHarness()
		workflowID := h.startAnswering(t)

		_, err := h.usecase.RecordAnswer(context.Background(), workflowID, 2)
		assert.NoError(t, err)

		_, err = h.usecase.Submit(context.Background(), workflowID)
		assert.Error(t, err)
		assert.Equal(t, 0, h.backend.submitCalls)

		snapshot, err := h.usecase.Snapshot(context.Background(), workflowID)
		assert.NoError(t, err)
		assert.Equal(t, models.StepAnswering, snapshot.Step)
	})

	t.Run("The final answer submits automatically and the workflow reaches RESULT_READY", func(t *testing.T) {
		h := newTestHarness()
		h.backend.statusSequence = []backend_dto.ProcessingStatusDTO{
			{SessionID: "sess-new", State: constvars.ProcessingStateProcessing, ProgressPercent: 40},
			{SessionID: "sess-new", State: constvars.ProcessingStateCompleted, ProgressPercent: 100},
		}
		workflowID := h.startAnswering(t)

		answerEverything(t, h, workflowID)
		assert.Equal(t, 1, h.backend.submitCalls, "recording the last answer submits without an extra call")

		snapshot := h.waitForStep(t, workflowID, models.StepResultReady)
		assert.Equal(t, 9.0, snapshot.Result.Scores.GAD7)
		assert.Equal(t, 9.0, snapshot.Result.Scores.PHQ9)
		assert.Equal(t, 5.0, snapshot.Result.Scores.PSS10)
		assert.Equal(t, 100, snapshot.ProgressPercent)

		h.archive.mu.Lock()
		assert.Len(t, h.archive.stored, 1, "the normalized result is archived")
		h.archive.mu.Unlock()

		h.publisher.mu.Lock()
		assert.Len(t, h.publisher.events, 1)
		assert.Equal(t, constvars.EventAssessmentCompleted, h.publisher.events[0].Event)
		h.publisher.mu.Unlock()
	})

	t.Run("A transient submission failure returns to ANSWERING with answers intact", func(t *testing.T) {
		h := newTestHarness()
		h.backend.submitErr = exceptions.ErrBackendStatusCode(constvars.StatusBadGateway, "submission")
		h.backend.statusSequence = []backend_dto.ProcessingStatusDTO{
			{SessionID: "sess-new", State: constvars.ProcessingStateCompleted},
		}
		workflowID := h.startAnswering(t)

		for i := 0; i < 25; i++ {
			_, err := h.usecase.RecordAnswer(context.Background(), workflowID, 1)
			assert.NoError(t, err)
		}
		// The last answer triggers the automatic submission, which fails.
		_, err := h.usecase.RecordAnswer(context.Background(), workflowID, 1)
		assert.Error(t, err)
		assert.Equal(t, 1, h.backend.submitCalls)

		snapshot, err := h.usecase.Snapshot(context.Background(), workflowID)
		assert.NoError(t, err)
		assert.Equal(t, models.StepAnswering, snapshot.Step)
		assert.Equal(t, 100, snapshot.ProgressPercent, "no answer is lost on a failed submission")

		_, err = h.usecase.Submit(context.Background(), workflowID)
		assert.NoError(t, err)
		h.waitForStep(t, workflowID, models.StepResultReady)
	})

	t.Run("Exhausted polling fails the workflow as RESULTS_DELAYED", func(t *testing.T) {
		h := newTestHarness()
		workflowID := h.startAnswering(t)

		answerEverything(t, h, workflowID)

		snapshot := h.waitForStep(t, workflowID, models.StepFailed)
		assert.Equal(t, constvars.FailureKindResultsDelayed, snapshot.Failure.Kind)

		h.publisher.mu.Lock()
		assert.Equal(t, constvars.EventAssessmentDelayed, h.publisher.events[0].Event)
		h.publisher.mu.Unlock()
	})
}

func TestResumeDecision(t *testing.T) {
	liveSession := func(h *testHarness) {
		h.backend.sessionsByPatient["pat-1"] = []backend_dto.SessionRecord{
			{ID: "sess-live", PatientID: "pat-1", Status: constvars.SessionStatusInProgress, CreatedAt: time.Now()},
		}
		h.backend.savedAnswers["sess-live"] = &backend_dto.AnswerSet{
			GAD7: []backend_dto.AnswerItem{
				{QuestionNumber: 1, Value: 2},
				{QuestionNumber: 2, Value: 1},
			},
		}
	}

	t.Run("Selecting a patient with a live session parks the decision", func(t *testing.T) {
		h := newTestHarness()
		liveSession(h)

		snapshot, err := h.usecase.Start(context.Background(), "pract-1", &requests.StartWorkflow{})
		assert.NoError(t, err)
		snapshot, err = h.usecase.SelectPatient(context.Background(), snapshot.WorkflowID, "pat-1")
		assert.NoError(t, err)

		assert.Equal(t, models.StepSelectingPatient, snapshot.Step)
		assert.NotNil(t, snapshot.PendingResume)
		assert.Equal(t, "sess-live", snapshot.PendingResume.Session.ID)
	})

	t.Run("Resume rehydrates the parked session at the first gap", func(t *testing.T) {
		h := newTestHarness()
		liveSession(h)

		snapshot, _ := h.usecase.Start(context.Background(), "pract-1", &requests.StartWorkflow{})
		workflowID := snapshot.WorkflowID
		_, err := h.usecase.SelectPatient(context.Background(), workflowID, "pat-1")
		assert.NoError(t, err)

		snapshot, err = h.usecase.ApplyResumeDecision(context.Background(), workflowID, constvars.ResumeDecisionResume)
		assert.NoError(t, err)
		assert.Equal(t, models.StepAnswering, snapshot.Step)
		assert.Nil(t, snapshot.PendingResume)
		assert.Equal(t, "sess-live", snapshot.Session.ID)
		assert.Equal(t, 3, snapshot.CurrentQuestion.Question.Number)
	})

	t.Run("Abort returns to patient selection without touching the session", func(t *testing.T) {
		h := newTestHarness()
		liveSession(h)

		snapshot, _ := h.usecase.Start(context.Background(), "pract-1", &requests.StartWorkflow{})
		workflowID := snapshot.WorkflowID
		_, err := h.usecase.SelectPatient(context.Background(), workflowID, "pat-1")
		assert.NoError(t, err)

		snapshot, err = h.usecase.ApplyResumeDecision(context.Background(), workflowID, constvars.ResumeDecisionAbort)
		assert.NoError(t, err)
		assert.Equal(t, models.StepSelectingPatient, snapshot.Step)
		assert.Nil(t, snapshot.PendingResume)
		assert.Nil(t, snapshot.Session)
	})

	t.Run("A decision without a parked candidate is rejected", func(t *testing.T) {
		h := newTestHarness()

		snapshot, _ := h.usecase.Start(context.Background(), "pract-1", &requests.StartWorkflow{})
		_, err := h.usecase.ApplyResumeDecision(context.Background(), snapshot.WorkflowID, constvars.ResumeDecisionResume)
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
	})

	t.Run("Starting with a fully answered session resumes ready to submit", func(t *testing.T) {
		h := newTestHarness()
		h.backend.sessionsByPatient["pat-1"] = []backend_dto.SessionRecord{
			{ID: "sess-full", PatientID: "pat-1", Status: constvars.SessionStatusInProgress, CreatedAt: time.Now()},
		}
		full := &backend_dto.AnswerSet{}
		for i := 1; i <= 7; i++ {
			full.GAD7 = append(full.GAD7, backend_dto.AnswerItem{QuestionNumber: i, Value: 1})
		}
		for i := 1; i <= 9; i++ {
			full.PHQ9 = append(full.PHQ9, backend_dto.AnswerItem{QuestionNumber: i, Value: 1})
		}
		for i := 1; i <= 10; i++ {
			full.PSS10 = append(full.PSS10, backend_dto.AnswerItem{QuestionNumber: i, Value: 1})
		}
		h.backend.savedAnswers["sess-full"] = full

		snapshot, err := h.usecase.Start(context.Background(), "pract-1", &requests.StartWorkflow{SessionID: "sess-full"})
		assert.NoError(t, err)
		assert.Equal(t, models.StepReadyToSubmit, snapshot.Step)
		assert.Equal(t, 100, snapshot.ProgressPercent)
	})
}

func TestTeardown(t *testing.T) {
	t.Run("Teardown removes the workflow and later calls are rejected", func(t *testing.T) {
		h := newTestHarness()
		workflowID := h.startAnswering(t)

		assert.NoError(t, h.usecase.Teardown(context.Background(), workflowID))

		_, err := h.usecase.Snapshot(context.Background(), workflowID)
		assert.Error(t, err)

		err = h.usecase.Teardown(context.Background(), workflowID)
		assert.Error(t, err, "a second teardown reports the workflow as gone")
	})
}

func TestWorkflowHistory(t *testing.T) {
	t.Run("History keeps torn-down workflows queryable", func(t *testing.T) {
		h := newTestHarness()
		workflowID := h.startAnswering(t)

		assert.NoError(t, h.usecase.Teardown(context.Background(), workflowID))

		records, err := h.usecase.History(context.Background(), "pract-1")
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, workflowID, records[0].WorkflowID)
		assert.Equal(t, "pract-1", records[0].PractitionerID)
		assert.Equal(t, constvars.WorkflowStepAnswering, records[0].Step)
	})

	t.Run("A practitioner without workflows gets an empty history", func(t *testing.T) {
		h := newTestHarness()
		h.startAnswering(t)

		records, err := h.usecase.History(context.Background(), "pract-other")
		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}
