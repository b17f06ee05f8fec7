package domain

import "time"

// APICallRecord is one logged API call, mock or live, success or failure
type APICallRecord struct {
	Endpoint  string    `json:"endpoint"`
	Method    string    `json:"method"`
	Request   any       `json:"request,omitempty"`
	Response  any       `json:"response,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
