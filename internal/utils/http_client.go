package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	backendRetries   = 2
	backendRetryWait = 200 * time.Millisecond
)

// HTTPClient is the resty client the portal talks to the backend with.
type HTTPClient struct {
	*resty.Client
}

// NewBackendHTTPClient presets the base URL, the JSON accept header and the
// request timeout. Transport errors and 503 answers are retried twice.
func NewBackendHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(backendRetries).
		SetRetryWaitTime(backendRetryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == http.StatusServiceUnavailable
		})

	return &HTTPClient{Client: c}
}
