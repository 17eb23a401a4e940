package questionnaires

import (
	"context"
	"encoding/json"
	"net/http"

	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/services/backend/transport"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"
)

const resourceQuestionnaire = "Questionnaire"

type questionnaireBackendClient struct {
	BaseUrl string
	Client  *transport.PacedClient
}

func NewQuestionnaireBackendClient(baseUrl string, client *transport.PacedClient) contracts.QuestionnaireBackendClient {
	return &questionnaireBackendClient{
		BaseUrl: baseUrl + "/questionnaires",
		Client:  client,
	}
}

// FindQuestionnaires returns the active questionnaires grouped by type, in
// administration order. No retries: a failed fetch surfaces immediately.
func (c *questionnaireBackendClient) FindQuestionnaires(ctx context.Context) ([]backend_dto.QuestionnaireDTO, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrBackendStatusCode(resp.StatusCode, resourceQuestionnaire)
	}

	var questionnaires []backend_dto.QuestionnaireDTO
	if err := json.NewDecoder(resp.Body).Decode(&questionnaires); err != nil {
		return nil, exceptions.ErrDecodeBackendResponse(err, resourceQuestionnaire)
	}
	return questionnaires, nil
}
