package resume

import (
	"context"
	"sort"

	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/models"
	"psyeval-service/internal/app/services/core/answers"
	"psyeval-service/internal/app/services/core/results"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"
	"psyeval-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ResumePoint is where a rehydrated workflow picks up: the first unanswered
// question, or ready-to-submit when every answer was already saved.
type ResumePoint struct {
	Session       models.AssessmentSession
	Store         *answers.Store
	Cursor        models.Cursor
	ReadyToSubmit bool
}

// Resolver rebuilds in-progress sessions from backend state so an operator
// can continue where a previous run stopped.
type Resolver struct {
	AssessmentBackendClient contracts.AssessmentBackendClient
	PatientBackendClient    contracts.PatientBackendClient
	Log                     *zap.Logger
}

func NewResolver(
	assessmentBackendClient contracts.AssessmentBackendClient,
	patientBackendClient contracts.PatientBackendClient,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		AssessmentBackendClient: assessmentBackendClient,
		PatientBackendClient:    patientBackendClient,
		Log:                     logger,
	}
}

// ResolveExplicit rehydrates the session named by sessionID. Only sessions
// still in progress are resumable; anything else fails without side effects.
func (r *Resolver) ResolveExplicit(ctx context.Context, sessionID string, catalog []models.QuestionnaireDefinition) (*ResumePoint, error) {
	requestID := utils.RequestIDFromContext(ctx)

	record, err := r.AssessmentBackendClient.FindSessionByID(ctx, sessionID)
	if err != nil {
		if exceptions.IsSessionVanished(err) {
			return nil, exceptions.ErrNoResumableSession(sessionID)
		}
		return nil, err
	}
	session := results.ToModelSession(record)
	if !session.InProgress() {
		r.Log.Warn("resume.Resolver session not resumable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingStepKey, string(session.Status)),
		)
		return nil, exceptions.ErrNoResumableSession(sessionID)
	}

	point, err := r.rehydrate(ctx, session, catalog)
	if err != nil {
		return nil, err
	}
	r.Log.Info("resume.Resolver rehydrated session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingProgressKey, point.Store.TotalAnswered()),
	)
	return point, nil
}

// CheckPatient reports the patient's in-progress session, if one exists.
// A nil candidate means a fresh session can be created.
func (r *Resolver) CheckPatient(ctx context.Context, patientID string) (*models.ResumeCandidate, error) {
	record, err := r.PatientBackendClient.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	sessions, err := r.AssessmentBackendClient.FindSessionsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		session := results.ToModelSession(&sessions[i])
		if session.InProgress() {
			return &models.ResumeCandidate{
				Session: session,
				Patient: models.Patient{
					ID:               record.ID,
					DisplayName:      record.DisplayName,
					HasActiveSession: true,
				},
			}, nil
		}
	}
	return nil, nil
}

// Rehydrate builds a resume point for a session known to be in progress.
func (r *Resolver) Rehydrate(ctx context.Context, session models.AssessmentSession, catalog []models.QuestionnaireDefinition) (*ResumePoint, error) {
	return r.rehydrate(ctx, session, catalog)
}

func (r *Resolver) rehydrate(ctx context.Context, session models.AssessmentSession, catalog []models.QuestionnaireDefinition) (*ResumePoint, error) {
	saved, err := r.AssessmentBackendClient.FindAnswers(ctx, session.ID)
	if err != nil && !exceptions.IsSessionVanished(err) {
		return nil, err
	}

	store := answers.NewStore(catalog)
	if saved != nil {
		store.Hydrate(saved)
	}

	point := &ResumePoint{Session: session, Store: store}
	if store.IsSessionComplete() {
		point.ReadyToSubmit = true
		return point, nil
	}
	point.Cursor = firstUnanswered(store, catalog)
	return point, nil
}

// SelectablePatients lists the practitioner's patients eligible for a new
// session. Patients with a known IN_PROGRESS session are excluded up front;
// resuming those goes through the explicit-session path instead.
func (r *Resolver) SelectablePatients(ctx context.Context, practitionerID string) ([]models.Patient, error) {
	records, err := r.PatientBackendClient.FindPatientsByPractitioner(ctx, practitionerID)
	if err != nil {
		return nil, err
	}

	sessions, err := r.AssessmentBackendClient.FindSessionsByPractitioner(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	active := make(map[string]bool, len(sessions))
	for i := range sessions {
		session := results.ToModelSession(&sessions[i])
		if session.InProgress() {
			active[session.PatientID] = true
		}
	}

	patients := make([]models.Patient, 0, len(records))
	for _, record := range records {
		if !record.Active || active[record.ID] {
			continue
		}
		patients = append(patients, models.Patient{
			ID:          record.ID,
			DisplayName: record.DisplayName,
		})
	}
	sort.Slice(patients, func(i, j int) bool {
		return patients[i].DisplayName < patients[j].DisplayName
	})

	r.Log.Info("Resolver.SelectablePatients listed patients",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

// firstUnanswered walks the catalog order and returns the cursor of the first
// question without a recorded value.
func firstUnanswered(store *answers.Store, catalog []models.QuestionnaireDefinition) models.Cursor {
	for qi, definition := range catalog {
		for idx, question := range definition.Questions {
			if _, ok := store.Get(definition.Type, question.Number); !ok {
				return models.Cursor{QuestionnaireIndex: qi, QuestionIndex: idx}
			}
		}
	}
	return models.Cursor{}
}
