package results

import (
	"testing"

	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestBuildSessionView(t *testing.T) {
	t.Run("In-progress sessions get the partial view", func(t *testing.T) {
		record := &backend_dto.SessionRecord{ID: "sess-1", Status: constvars.SessionStatusInProgress}

		view := BuildSessionView(record, nil)

		assert.Equal(t, models.SessionViewPartial, view.Kind)
		assert.NotNil(t, view.Partial)
		assert.Nil(t, view.Full)
		assert.Equal(t, models.SessionInProgress, view.Partial.Session.Status)
	})

	t.Run("Completed sessions with a result payload get the full view", func(t *testing.T) {
		record := &backend_dto.SessionRecord{ID: "sess-2", Status: constvars.SessionStatusCompleted}
		payload := &backend_dto.ResultPayload{
			SessionID:    "sess-2",
			ResultFields: backend_dto.ResultFields{GAD7Score: floatPtr(7)},
		}

		view := BuildSessionView(record, payload)

		assert.Equal(t, models.SessionViewFull, view.Kind)
		assert.NotNil(t, view.Full)
		assert.Nil(t, view.Partial)
		assert.Equal(t, 7.0, view.Full.Result.Scores.GAD7)
	})

	t.Run("Completed sessions fall back to record-borne result fields", func(t *testing.T) {
		record := &backend_dto.SessionRecord{
			ID:           "sess-3",
			Status:       constvars.SessionStatusCompleted,
			ResultFields: backend_dto.ResultFields{PSS10Score: floatPtr(19)},
		}

		view := BuildSessionView(record, nil)

		assert.Equal(t, models.SessionViewFull, view.Kind)
		assert.Equal(t, 19.0, view.Full.Result.Scores.PSS10)
		assert.Equal(t, "sess-3", view.Full.Result.SessionID)
	})

	t.Run("Completed sessions without any result data stay partial", func(t *testing.T) {
		record := &backend_dto.SessionRecord{ID: "sess-4", Status: constvars.SessionStatusCompleted}

		view := BuildSessionView(record, nil)

		assert.Equal(t, models.SessionViewPartial, view.Kind)
	})
}
