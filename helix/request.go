package helix

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/golden-vcr/twitchapi"
)

// Request describes a single Helix endpoint invocation: everything needed to build the
// URI and headers, but nothing about how the response is interpreted
type Request interface {
	Method() string
	Path() string
	Scope() twitchapi.Validator
	Query() url.Values
}

// Endpoint is a Request whose response shape is fixed at compile time: sending a
// GetTopGamesRequest can only ever produce a *Response[[]Game]
type Endpoint[D any] interface {
	Request
	ParseResponse(raw *RawResponse) (*Response[D], error)
}

// BodyEndpoint is an Endpoint that requires a JSON request body of type B
type BodyEndpoint[B any, D any] interface {
	Endpoint[D]
	EncodeBody(body B) ([]byte, error)
}

// Credentials identifies the caller to Twitch: every Helix request must carry both a
// Client-Id header and a bearer token issued to that client
type Credentials struct {
	ClientID    string
	AccessToken string
}

// RawResponse is an HTTP response whose body has been read in full, along with the URI
// that produced it
type RawResponse struct {
	URI    string
	Status int
	Header http.Header
	Body   []byte
}

// Response is a decoded Helix response. Cursor is empty if there is no further page.
// Total is only set by endpoints that report a total count, and Other collects any
// top-level fields besides data, pagination and total.
type Response[D any] struct {
	Data   D
	Cursor Cursor
	Total  *int64
	Other  map[string]json.RawMessage
}

// encodeJSON is the EncodeBody implementation shared by every endpoint with a body
func encodeJSON(body any) ([]byte, error) {
	return json.Marshal(body)
}

// setOptional sets key only if value is non-empty, so that unset optional parameters
// are omitted from the query string entirely
func setOptional(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// addAll appends one key=value pair per value, which is how Helix accepts lists
func addAll(q url.Values, key string, values []string) {
	for _, value := range values {
		q.Add(key, value)
	}
}

// setFirst sets the page size parameter if the caller asked for one
func setFirst(q url.Values, first int) {
	if first > 0 {
		q.Set("first", itoa(first))
	}
}
