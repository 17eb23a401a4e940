package resume

import (
	"context"
	"testing"
	"time"

	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAssessmentBackend struct {
	sessions map[string]*backend_dto.SessionRecord
	answers  map[string]*backend_dto.AnswerSet

	byPatient      map[string][]backend_dto.SessionRecord
	byPractitioner map[string][]backend_dto.SessionRecord
}

func (s *stubAssessmentBackend) CreateSession(ctx context.Context, request *backend_dto.CreateSessionRequest) (*backend_dto.SessionRecord, error) {
	return nil, nil
}

func (s *stubAssessmentBackend) FindSessionByID(ctx context.Context, sessionID string) (*backend_dto.SessionRecord, error) {
	record, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrBackendStatusCode(constvars.StatusNotFound, "session")
	}
	return record, nil
}

func (s *stubAssessmentBackend) FindSessionsByPractitioner(ctx context.Context, practitionerID string) ([]backend_dto.SessionRecord, error) {
	return s.byPractitioner[practitionerID], nil
}

func (s *stubAssessmentBackend) FindSessionsByPatient(ctx context.Context, patientID string) ([]backend_dto.SessionRecord, error) {
	return s.byPatient[patientID], nil
}

func (s *stubAssessmentBackend) FindSessionByConsultation(ctx context.Context, consultationID string) (*backend_dto.SessionRecord, error) {
	return nil, exceptions.ErrBackendStatusCode(constvars.StatusNotFound, "session")
}

func (s *stubAssessmentBackend) FindAnswers(ctx context.Context, sessionID string) (*backend_dto.AnswerSet, error) {
	saved, ok := s.answers[sessionID]
	if !ok {
		return &backend_dto.AnswerSet{}, nil
	}
	return saved, nil
}

func (s *stubAssessmentBackend) SubmitAnswers(ctx context.Context, sessionID string, answers *backend_dto.AnswerSet) (*backend_dto.ProcessingStatusDTO, error) {
	return nil, nil
}

func (s *stubAssessmentBackend) FindProcessingStatus(ctx context.Context, sessionID string) (*backend_dto.ProcessingStatusDTO, error) {
	return nil, nil
}

func (s *stubAssessmentBackend) FindResults(ctx context.Context, sessionID string) (*backend_dto.ResultPayload, error) {
	return nil, nil
}

type stubPatientBackend struct {
	patients map[string]*backend_dto.PatientRecord
	byOwner  map[string][]backend_dto.PatientRecord
}

func (s *stubPatientBackend) FindPatientsByPractitioner(ctx context.Context, practitionerID string) ([]backend_dto.PatientRecord, error) {
	return s.byOwner[practitionerID], nil
}

func (s *stubPatientBackend) FindPatientByID(ctx context.Context, patientID string) (*backend_dto.PatientRecord, error) {
	record, ok := s.patients[patientID]
	if !ok {
		return nil, exceptions.ErrPatientNotFound(patientID)
	}
	return record, nil
}

func buildCatalog() []models.QuestionnaireDefinition {
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
	}
}

func answerItems(count, value int) []backend_dto.AnswerItem {
	items := make([]backend_dto.AnswerItem, 0, count)
	for i := 1; i <= count; i++ {
		items = append(items, backend_dto.AnswerItem{QuestionNumber: i, Value: value})
	}
	return items
}

func TestResolveExplicit(t *testing.T) {
	t.Run("Partially answered session resumes at the first gap", func(t *testing.T) {
		backend := &stubAssessmentBackend{
			sessions: map[string]*backend_dto.SessionRecord{
				"sess-1": {ID: "sess-1", PatientID: "pat-1", Status: constvars.SessionStatusInProgress},
			},
			answers: map[string]*backend_dto.AnswerSet{
				"sess-1": {
					GAD7: answerItems(7, 1),
					PHQ9: answerItems(3, 2),
				},
			},
		}
		resolver := NewResolver(backend, &stubPatientBackend{}, zap.NewNop())

		point, err := resolver.ResolveExplicit(context.Background(), "sess-1", buildCatalog())
		assert.NoError(t, err)
		assert.False(t, point.ReadyToSubmit)
		assert.Equal(t, 1, point.Cursor.QuestionnaireIndex, "resumes inside the PHQ-9")
		assert.Equal(t, 3, point.Cursor.QuestionIndex, "the fourth PHQ-9 question is the first gap")
		assert.Equal(t, 10, point.Store.TotalAnswered())
	})

	t.Run("Fully answered session resumes ready to submit", func(t *testing.T) {
		backend := &stubAssessmentBackend{
			sessions: map[string]*backend_dto.SessionRecord{
				"sess-2": {ID: "sess-2", PatientID: "pat-1", Status: constvars.SessionStatusInProgress},
			},
			answers: map[string]*backend_dto.AnswerSet{
				"sess-2": {
					GAD7:  answerItems(7, 1),
					PHQ9:  answerItems(9, 1),
					PSS10: answerItems(10, 2),
				},
			},
		}
		resolver := NewResolver(backend, &stubPatientBackend{}, zap.NewNop())

		point, err := resolver.ResolveExplicit(context.Background(), "sess-2", buildCatalog())
		assert.NoError(t, err)
		assert.True(t, point.ReadyToSubmit)
		assert.True(t, point.Store.IsSessionComplete())
	})

	t.Run("Completed session is not resumable", func(t *testing.T) {
		backend := &stubAssessmentBackend{
			sessions: map[string]*backend_dto.SessionRecord{
				"sess-3": {ID: "sess-3", PatientID: "pat-1", Status: constvars.SessionStatusCompleted},
			},
		}
		resolver := NewResolver(backend, &stubPatientBackend{}, zap.NewNop())

		_, err := resolver.ResolveExplicit(context.Background(), "sess-3", buildCatalog())
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("Unknown session id is not resumable", func(t *testing.T) {
		resolver := NewResolver(&stubAssessmentBackend{sessions: map[string]*backend_dto.SessionRecord{}}, &stubPatientBackend{}, zap.NewNop())

		_, err := resolver.ResolveExplicit(context.Background(), "nope", buildCatalog())
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestCheckPatient(t *testing.T) {
	t.Run("Patient with an in-progress session yields a candidate", func(t *testing.T) {
		created := time.Now().Add(-time.Hour)
		backend := &stubAssessmentBackend{
			byPatient: map[string][]backend_dto.SessionRecord{
				"pat-1": {
					{ID: "sess-old", PatientID: "pat-1", Status: constvars.SessionStatusCompleted},
					{ID: "sess-live", PatientID: "pat-1", Status: constvars.SessionStatusInProgress, CreatedAt: created},
				},
			},
		}
		patientBackend := &stubPatientBackend{
			patients: map[string]*backend_dto.PatientRecord{
				"pat-1": {ID: "pat-1", DisplayName: "Ada Vega", Active: true},
			},
		}
		resolver := NewResolver(backend, patientBackend, zap.NewNop())

		candidate, err := resolver.CheckPatient(context.Background(), "pat-1")
		assert.NoError(t, err)
		assert.NotNil(t, candidate)
		assert.Equal(t, "sess-live", candidate.Session.ID)
		assert.True(t, candidate.Patient.HasActiveSession)
	})

	t.Run("Patient without active sessions yields no candidate", func(t *testing.T) {
		backend := &stubAssessmentBackend{
			byPatient: map[string][]backend_dto.SessionRecord{
				"pat-2": {{ID: "sess-done", PatientID: "pat-2", Status: constvars.SessionStatusCompleted}},
			},
		}
		patientBackend := &stubPatientBackend{
			patients: map[string]*backend_dto.PatientRecord{
				"pat-2": {ID: "pat-2", DisplayName: "Ben Ford", Active: true},
			},
		}
		resolver := NewResolver(backend, patientBackend, zap.NewNop())

		candidate, err := resolver.CheckPatient(context.Background(), "pat-2")
		assert.NoError(t, err)
		assert.Nil(t, candidate)
	})
}

func TestSelectablePatients(t *testing.T) {
	backend := &stubAssessmentBackend{
		byPractitioner: map[string][]backend_dto.SessionRecord{
			"pract-1": {
				{ID: "sess-1", PatientID: "pat-busy", Status: constvars.SessionStatusInProgress},
				{ID: "sess-2", PatientID: "pat-a", Status: constvars.SessionStatusCompleted},
			},
		},
	}
	patientBackend := &stubPatientBackend{
		byOwner: map[string][]backend_dto.PatientRecord{
			"pract-1": {
				{ID: "pat-busy", DisplayName: "Zoe Quinn", Active: true},
				{ID: "pat-a", DisplayName: "Ada Vega", Active: true},
				{ID: "pat-b", DisplayName: "Ben Ford", Active: true},
				{ID: "pat-c", DisplayName: "Inactive One", Active: false},
			},
		},
	}
	resolver := NewResolver(backend, patientBackend, zap.NewNop())

	t.Run("Excludes inactive patients and sorts by name", func(t *testing.T) {
		patients, err := resolver.SelectablePatients(context.Background(), "pract-1")
		assert.NoError(t, err)
		assert.Len(t, patients, 2)
		assert.Equal(t, "Ada Vega", patients[0].DisplayName)
		assert.Equal(t, "Ben Ford", patients[1].DisplayName)
	})

	t.Run("Excludes patients with a live session", func(t *testing.T) {
		patients, err := resolver.SelectablePatients(context.Background(), "pract-1")
		assert.NoError(t, err)
		for _, patient := range patients {
			assert.NotEqual(t, "pat-busy", patient.ID, "a patient with an IN_PROGRESS session is not selectable for a new one")
		}
	})

	t.Run("Completed sessions do not block selection", func(t *testing.T) {
		patients, err := resolver.SelectablePatients(context.Background(), "pract-1")
		assert.NoError(t, err)
		assert.Equal(t, "pat-a", patients[0].ID)
	})
}
