package assessments

import (
	"bytes"
	"context"
	"net/http"

	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/services/backend/transport"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"

	"encoding/json"
)

const resourceSession = "AssessmentSession"

type assessmentBackendClient struct {
	BaseUrl string
	Client  *transport.PacedClient
}

func NewAssessmentBackendClient(baseUrl string, client *transport.PacedClient) contracts.AssessmentBackendClient {
	return &assessmentBackendClient{
		BaseUrl: baseUrl + "/sessions",
		Client:  client,
	}
}

func (c *assessmentBackendClient) CreateSession(ctx context.Context, request *backend_dto.CreateSessionRequest) (*backend_dto.SessionRecord, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	var session backend_dto.SessionRecord
	if err := c.doJSON(req, constvars.StatusCreated, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *assessmentBackendClient) FindSessionByID(ctx context.Context, sessionID string) (*backend_dto.SessionRecord, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/"+sessionID, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	var session backend_dto.SessionRecord
	if err := c.doJSON(req, constvars.StatusOK, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *assessmentBackendClient) FindSessionsByPractitioner(ctx context.Context, practitionerID string) ([]backend_dto.SessionRecord, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/practitioner/"+practitionerID, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	var sessions []backend_dto.SessionRecord
	if err := c.doJSON(req, constvars.StatusOK, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *assessmentBackendClient) FindSessionsByPatient(ctx context.Context, patientID string) ([]backend_dto.SessionRecord, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/patient/"+patientID, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	var sessions []backend_dto.SessionRecord
	if err := c.doJSON(req, constvars.StatusOK, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *assessmentBackendClient) FindSessionByConsultation(ctx context.Context, consultationID string) (*backend_dto.SessionRecord, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/consultation/"+consultationID, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	var session backend_dto.SessionRecord
	if err := c.doJSON(req, constvars.StatusOK, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *assessmentBackendClient) FindAnswers(ctx context.Context, sessionID string) (*backend_dto.AnswerSet, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/"+sessionID+"/answers", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	var answers backend_dto.AnswerSet
	if err := c.doJSON(req, constvars.StatusOK, &answers); err != nil {
		return nil, err
	}
	return &answers, nil
}

func (c *assessmentBackendClient) SubmitAnswers(ctx context.Context, sessionID string, answers *backend_dto.AnswerSet) (*backend_dto.ProcessingStatusDTO, error) {
	requestJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/"+sessionID+"/answers", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	var status backend_dto.ProcessingStatusDTO
	if err := c.doJSON(req, constvars.StatusAccepted, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *assessmentBackendClient) FindProcessingStatus(ctx context.Context, sessionID string) (*backend_dto.ProcessingStatusDTO, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/"+sessionID+"/status", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	var status backend_dto.ProcessingStatusDTO
	if err := c.doJSON(req, constvars.StatusOK, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *assessmentBackendClient) FindResults(ctx context.Context, sessionID string) (*backend_dto.ResultPayload, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/"+sessionID+"/results", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	var results backend_dto.ResultPayload
	if err := c.doJSON(req, constvars.StatusOK, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// doJSON sends the request and decodes a JSON body into out when the backend
// answers with expectedStatus. 200 is always accepted for idempotent creates
// on backends that do not distinguish.
func (c *assessmentBackendClient) doJSON(req *http.Request, expectedStatus int, out interface{}) error {
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus && resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrBackendStatusCode(resp.StatusCode, resourceSession)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrDecodeBackendResponse(err, resourceSession)
	}
	return nil
}
