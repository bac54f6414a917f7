package tetra

import (
	"fmt"
	"net/http"
)

// RequestError reports that the HTTP request itself failed: the
// context expired, the URL was unusable, or the transport gave up
// before a response arrived.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError reports that the HTTP request succeeded but the body
// did not match the expected shape. Either the upstream schema
// drifted or this client is out of date.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected response shape: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// HTTPError reports a non-2xx response whose body carried no
// decodable error envelope. A non-2xx body that still decodes is
// surfaced through the envelope instead, so callers can read the
// upstream message.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	if !e.Valid() {
		return fmt.Sprintf("http status %d (out of range)", e.StatusCode)
	}
	return fmt.Sprintf("http status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Valid reports whether the status code is within the registered
// 100-599 range.
func (e *HTTPError) Valid() bool {
	return e.StatusCode >= 100 && e.StatusCode <= 599
}
