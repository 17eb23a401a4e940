package results

import (
	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/backend_dto"
)

// ToModelSession converts a backend session record to the domain model.
func ToModelSession(record *backend_dto.SessionRecord) models.AssessmentSession {
	return models.AssessmentSession{
		ID:             record.ID,
		PatientID:      record.PatientID,
		PractitionerID: record.PractitionerID,
		ConsultationID: record.ConsultationID,
		CreatedAt:      record.CreatedAt,
		Status:         models.ParseSessionStatus(record.Status),
	}
}

// BuildSessionView discriminates a session record into the tagged variant.
// A FullResultView needs a COMPLETED session; the result comes from the
// dedicated payload when available, falling back to result fields carried on
// the record itself.
func BuildSessionView(record *backend_dto.SessionRecord, payload *backend_dto.ResultPayload) *models.SessionView {
	session := ToModelSession(record)

	if session.Status == models.SessionCompleted {
		var result *models.ResultSet
		if payload != nil {
			result = Normalize(payload)
		} else if HasResultData(&record.ResultFields) {
			result = NormalizeSession(record)
		}
		if result != nil {
			return &models.SessionView{
				Kind: models.SessionViewFull,
				Full: &models.FullResultView{Session: session, Result: *result},
			}
		}
	}

	return &models.SessionView{
		Kind:    models.SessionViewPartial,
		Partial: &models.PartialSessionView{Session: session},
	}
}
