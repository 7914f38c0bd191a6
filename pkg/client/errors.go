package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the embedding service.
type APIError struct {
	// StatusCode is the HTTP status the service answered with.
	StatusCode int

	// Detail is the service's error description, taken from the
	// {"detail": "..."} body when present, or the raw body otherwise.
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: service returned %d: %s", e.StatusCode, e.Detail)
}

// NotReady reports whether the service answered 503, meaning it is
// reachable but its model is not loaded yet. Callers typically retry
// these after a delay.
func (e *APIError) NotReady() bool {
	return e.StatusCode == http.StatusServiceUnavailable
}

// apiError builds an *APIError from a non-2xx response body.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return &APIError{StatusCode: resp.StatusCode, Detail: detail.Detail}
	}

	return &APIError{StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
}
