// Package model contains the response envelope and the typed payload
// shapes returned by the TETRA CHANNEL API. Everything here is a
// read-only snapshot deserialized from a single response body.
package model

// Response is the uniform envelope every endpoint answers with.
// Exactly one of Error and Data is meaningful: when Success is false,
// Data is nil and Error carries the reason; when Success is true, Data
// is set.
type Response[T any] struct {
	// Success reports whether the request was successful.
	Success bool `json:"success"`
	// Error is the reason the request failed.
	Error *ErrorDetail `json:"error,omitempty"`
	// Cache describes how this request was cached upstream.
	Cache *Cache `json:"cache,omitempty"`
	// Data is the requested payload.
	Data *T `json:"data,omitempty"`
}

// ErrorDetail is the machine-readable failure reason embedded in an
// unsuccessful envelope.
type ErrorDetail struct {
	// Msg is the error message, e.g. "No such user! | Either you
	// mistyped something, or the account no longer exists."
	Msg string `json:"msg"`
	Key string `json:"key,omitempty"`
	// Context carries endpoint-specific detail about the failure.
	Context string `json:"context,omitempty"`
}
