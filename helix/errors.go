package helix

import (
	"errors"
	"fmt"
)

// ErrPageLimit is reported by a Pager that has yielded as many pages as it was allowed to
// while the server was still returning a cursor
var ErrPageLimit = errors.New("helix: page limit reached")

// TransportError indicates that no HTTP response could be obtained, or that the response
// body could not be read: the request may or may not have reached Twitch
type TransportError struct {
	URI string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("helix: request to %s failed: %v", e.URI, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DeserializeError indicates that Twitch responded with a body that could not be decoded
// into the shape declared by the endpoint. Body carries the raw response text.
type DeserializeError struct {
	Body   string
	Err    error
	URI    string
	Status int
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("helix: could not deserialize response from %s (status %d): %v", e.URI, e.Status, e.Err)
}

func (e *DeserializeError) Unwrap() error {
	return e.Err
}

// InvalidResponseError indicates that a response was well-formed but semantically
// unexpected for the endpoint, e.g. an empty data array where exactly one element is
// required, or a status code the endpoint does not document
type InvalidResponseError struct {
	Reason string
	Body   string
	URI    string
	Status int
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("helix: invalid response from %s (status %d): %s", e.URI, e.Status, e.Reason)
}

// APIError is the standard Helix error body, returned alongside any non-2xx status:
//
//	{"error": "Not Found", "status": 404, "message": "..."}
type APIError struct {
	Status    int    `json:"status"`
	ErrorText string `json:"error"`
	Message   string `json:"message"`
	URI       string `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("helix: got response %d from %s: %s: %s", e.Status, e.URI, e.ErrorText, e.Message)
}
