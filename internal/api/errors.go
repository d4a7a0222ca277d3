package api

import (
	"errors"
	"fmt"
)

// ErrNoResponse is returned by MockBackend when no canned response is queued.
var ErrNoResponse = errors.New("no canned response")

// StatusError indicates the server answered with a non-success status.
type StatusError struct {
	Endpoint   Endpoint
	StatusCode int

	// Message is the server's "error" field, if it sent one.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Endpoint, e.StatusCode)
}

// TransportError indicates the request never got an answer.
type TransportError struct {
	Endpoint Endpoint
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// InvalidResponseError indicates a success response whose body could not be
// decoded or does not match the expected shape.
type InvalidResponseError struct {
	Endpoint Endpoint
	Body     []byte
	Err      error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("%s: invalid response: %v", e.Endpoint, e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// EndpointOf returns the endpoint a backend error belongs to, or "" for
// errors that did not come from a backend call.
func EndpointOf(err error) Endpoint {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Endpoint
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Endpoint
	}
	var ie *InvalidResponseError
	if errors.As(err, &ie) {
		return ie.Endpoint
	}
	return ""
}
