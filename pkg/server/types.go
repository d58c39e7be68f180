package server

import (
	"time"
)

// ErrorResponse represents error responses as per the public API contract
type ErrorResponse struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"requestId"`
	Timestamp time.Time              `json:"timestamp"`
	Retryable bool                   `json:"retryable"`
}

// ChecksResponse lists the check names the service can run.
type ChecksResponse struct {
	Checks []string `json:"checks"`
}
