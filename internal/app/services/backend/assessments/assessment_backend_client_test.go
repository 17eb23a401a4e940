package assessments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"psyeval-service/internal/app/services/backend/transport"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.HandlerFunc) (*httptest.Server, *assessmentBackendClient) {
	server := httptest.NewServer(handler)
	client := NewAssessmentBackendClient(server.URL, transport.NewPacedClient(100, 100, 5)).(*assessmentBackendClient)
	return server, client
}

func TestCreateSession(t *testing.T) {
	t.Run("Posts the request and decodes the created session", func(t *testing.T) {
		server, client := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/sessions", r.URL.Path)

			var request backend_dto.CreateSessionRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, "pat-1", request.PatientID)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(backend_dto.SessionRecord{
				ID:        "sess-1",
				PatientID: request.PatientID,
				Status:    constvars.SessionStatusInProgress,
			})
		})
		defer server.Close()

		session, err := client.CreateSession(context.Background(), &backend_dto.CreateSessionRequest{
			PatientID:      "pat-1",
			PractitionerID: "pract-1",
		})
		assert.NoError(t, err)
		assert.Equal(t, "sess-1", session.ID)
	})

	t.Run("Surfaces the backend status code on failure", func(t *testing.T) {
		server, client := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})
		defer server.Close()

		_, err := client.CreateSession(context.Background(), &backend_dto.CreateSessionRequest{PatientID: "pat-1"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
	})
}

func TestSubmitAnswers(t *testing.T) {
	t.Run("Accepts a 202 with the initial processing status", func(t *testing.T) {
		server, client := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/sessions/sess-1/answers", r.URL.Path)

			var answers backend_dto.AnswerSet
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&answers))
			assert.Len(t, answers.GAD7, 2)

			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(backend_dto.ProcessingStatusDTO{
				SessionID: "sess-1",
				State:     constvars.ProcessingStateProcessing,
			})
		})
		defer server.Close()

		status, err := client.SubmitAnswers(context.Background(), "sess-1", &backend_dto.AnswerSet{
			GAD7: []backend_dto.AnswerItem{
				{QuestionNumber: 1, Value: 2},
				{QuestionNumber: 2, Value: 0},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.ProcessingStateProcessing, status.State)
	})
}

func TestFindProcessingStatus(t *testing.T) {
	t.Run("Decodes an in-flight status report", func(t *testing.T) {
		server, client := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sessions/sess-1/status", r.URL.Path)
			json.NewEncoder(w).Encode(backend_dto.ProcessingStatusDTO{
				SessionID:       "sess-1",
				State:           constvars.ProcessingStateProcessing,
				ProgressPercent: 55,
			})
		})
		defer server.Close()

		status, err := client.FindProcessingStatus(context.Background(), "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, 55, status.ProgressPercent)
	})

	t.Run("A 404 reads as a vanished session", func(t *testing.T) {
		server, client := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer server.Close()

		_, err := client.FindProcessingStatus(context.Background(), "sess-gone")
		assert.Error(t, err)
		assert.True(t, exceptions.IsSessionVanished(err))
	})
}

func TestFindResults(t *testing.T) {
	t.Run("Decodes both result shapes into one payload", func(t *testing.T) {
		server, client := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sessions/sess-1/results", r.URL.Path)
			w.Write([]byte(`{
				"sessionId": "sess-1",
				"scores": {"gad7": 9},
				"phq9Score": 12,
				"recommendations": ["follow up"]
			}`))
		})
		defer server.Close()

		payload, err := client.FindResults(context.Background(), "sess-1")
		assert.NoError(t, err)
		assert.NotNil(t, payload.Scores.GAD7)
		assert.Equal(t, 9.0, *payload.Scores.GAD7)
		assert.NotNil(t, payload.PHQ9Score)
		assert.Equal(t, 12.0, *payload.PHQ9Score)
		assert.Equal(t, []string{"follow up"}, payload.Recommendations)
	})
}

func TestFindAnswers(t *testing.T) {
	t.Run("Decodes saved answers grouped by questionnaire", func(t *testing.T) {
		server, client := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sessions/sess-1/answers", r.URL.Path)
			json.NewEncoder(w).Encode(backend_dto.AnswerSet{
				PHQ9: []backend_dto.AnswerItem{{QuestionNumber: 4, Value: 2}},
			})
		})
		defer server.Close()

		answers, err := client.FindAnswers(context.Background(), "sess-1")
		assert.NoError(t, err)
		assert.Len(t, answers.PHQ9, 1)
		assert.Equal(t, 4, answers.PHQ9[0].QuestionNumber)
	})
}
