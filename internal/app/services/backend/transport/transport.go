// Package transport wraps the HTTP client shared by the assessment backend
// clients. Outbound calls are paced with a token bucket so a burst of
// concurrently polling workflows cannot flood the backend.
package transport

import (
	"net/http"
	"time"

	"psyeval-service/internal/pkg/exceptions"

	"golang.org/x/time/rate"
)

type PacedClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewPacedClient(requestsPerSecond, burst, timeoutInSecond int) *PacedClient {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &PacedClient{
		httpClient: &http.Client{Timeout: time.Duration(timeoutInSecond) * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

func (c *PacedClient) Do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}
