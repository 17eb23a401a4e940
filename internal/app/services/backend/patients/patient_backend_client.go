package patients

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

const resourcePatient = "Patient"

type patientBackendClient struct {
	BaseUrl string
	Client  *transport.PacedClient
}

func NewPatientBackendClient(baseUrl string, client *transport.PacedClient) contracts.PatientBackendClient {
	return &patientBackendClient{
		BaseUrl: baseUrl + "/patients",
		Client:  client,
	}
}

func (c *patientBackendClient) FindPatientsByPractitioner(ctx context.Context, practitionerID string) ([]backend_dto.PatientRecord, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/practitioner/"+practitionerID, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrBackendStatusCode(resp.StatusCode, resourcePatient)
	}

	var patients []backend_dto.PatientRecord
	if err := json.NewDecoder(resp.Body).Decode(&patients); err != nil {
		return nil, exceptions.ErrDecodeBackendResponse(err, resourcePatient)
	}
	return patients, nil
}

func (c *patientBackendClient) FindPatientByID(ctx context.Context, patientID string) (*backend_dto.PatientRecord, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/"+patientID, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrPatientNotFound(patientID)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrBackendStatusCode(resp.StatusCode, resourcePatient)
	}

	var patient backend_dto.PatientRecord
	if err := json.NewDecoder(resp.Body).Decode(&patient); err != nil {
		return nil, exceptions.ErrDecodeBackendResponse(err, resourcePatient)
	}
	return &patient, nil
}
