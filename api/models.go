// Package api holds the response envelope shared by every endpoint and
// middleware. Application outcomes always ride on HTTP 200; clients
// switch on the machine-readable system code.
package api

import "go.pilab.hu/partsdesk/domain"

// Envelope is the uniform response shape of every endpoint.
type Envelope struct {
	Status   bool   `json:"status"`
	System   string `json:"system"`
	Response any    `json:"response,omitempty"`
}

// Success wraps a payload in a successful envelope. A nil response is
// omitted from the JSON.
func Success(response any) Envelope {
	return Envelope{Status: true, System: domain.CodeSuccess, Response: response}
}

// Failure builds a failed envelope carrying only an outcome code.
func Failure(code string) Envelope {
	return Envelope{System: code}
}

// FailureWith builds a failed envelope carrying a payload, e.g. the
// field-level validation errors of a rejected request.
func FailureWith(code string, response any) Envelope {
	return Envelope{System: code, Response: response}
}
