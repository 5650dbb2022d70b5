// Package api defines the response envelope every endpoint returns.
package api

import "slices"

// Envelope wraps every response body. Exactly one of Data and Error is
// populated; the other marshals as null so clients can branch on either
// field without inspecting status codes. Meta always carries the trace id
// when one is known.
type Envelope[T any] struct {
	Data  *T         `json:"data"`
	Meta  Meta       `json:"meta"`
	Error *ErrorBody `json:"error"`
}

// Meta is the cross-cutting metadata block of an envelope.
type Meta struct {
	TraceID *string `json:"traceId,omitempty"`
}

// ErrorBody is the machine-readable error payload. Code is a stable
// SCREAMING_SNAKE token derived from the HTTP status.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
	TraceID *string      `json:"traceId,omitempty"`
}

// FieldIssue pinpoints one problem, optionally tied to a request field.
type FieldIssue struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue"`
}

// NewSuccessEnvelope wraps data in a success envelope.
func NewSuccessEnvelope[T any](traceID *string, data T) Envelope[T] {
	d := data
	return Envelope[T]{
		Data: &d,
		Meta: Meta{TraceID: traceID},
	}
}

// NewErrorEnvelope builds an error envelope. The details slice is copied so
// later mutation by the caller cannot leak into an already-built response.
func NewErrorEnvelope[T any](traceID *string, code, msg string, details []FieldIssue) Envelope[T] {
	return Envelope[T]{
		Meta: Meta{TraceID: traceID},
		Error: &ErrorBody{
			Code:    code,
			Message: msg,
			Details: slices.Clone(details),
			TraceID: traceID,
		},
	}
}
