package helix

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// DefaultBaseURL is the root of the Helix API; every request path is relative to it
const DefaultBaseURL = "https://api.twitch.tv/helix/"

// HTTPClient is the transport used to execute requests: *http.Client satisfies it, and
// tests may substitute anything that can produce a response
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer is notified once per completed round trip, e.g. to record latency metrics.
// status is 0 if the request failed before a response was received.
type Observer func(method string, path string, status int, elapsed time.Duration)

// Options configures a Client; every field is optional
type Options struct {
	BaseURL    string
	HTTPClient HTTPClient
	Logger     *slog.Logger
	Observer   Observer
}

// Client sends Helix requests. It holds no credentials of its own: the caller supplies
// Credentials with every call, so a single Client may serve both app and user tokens.
type Client struct {
	baseURL    *url.URL
	httpClient HTTPClient
	logger     *slog.Logger
	observer   Observer
}

// NewClient initializes a Client, falling back to DefaultBaseURL and http.DefaultClient
func NewClient(opts Options) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL '%s': scheme and host are required", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		logger:     logger,
		observer:   opts.Observer,
	}, nil
}

// URI resolves the request against baseURL. Query parameters are encoded in sorted key
// order, so the same request always produces the same URI.
func URI(baseURL *url.URL, req Request) (*url.URL, error) {
	rel, err := url.Parse(req.Path())
	if err != nil {
		return nil, fmt.Errorf("invalid request path '%s': %w", req.Path(), err)
	}
	u := baseURL.ResolveReference(rel)
	if q := req.Query(); len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u, nil
}

// URI resolves the request against the client's base URL
func (c *Client) URI(req Request) (*url.URL, error) {
	return URI(c.baseURL, req)
}

// NewHTTPRequest builds the outgoing HTTP request, with auth headers set from creds. If
// body is non-nil it is sent as JSON.
func (c *Client) NewHTTPRequest(ctx context.Context, req Request, body []byte, creds Credentials) (*http.Request, error) {
	u, err := c.URI(req)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), u.String(), bodyReader)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	httpReq.Header.Set("Client-Id", creds.ClientID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}

// Do performs a single round trip and reads the response body in full, without
// interpreting it. Most callers should use Send or SendWithBody instead.
func (c *Client) Do(ctx context.Context, req Request, body []byte, creds Credentials) (*RawResponse, error) {
	httpReq, err := c.NewHTTPRequest(ctx, req, body, creds)
	if err != nil {
		return nil, err
	}
	uri := httpReq.URL.String()

	start := time.Now()
	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observe(req, 0, start)
		return nil, &TransportError{URI: uri, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	c.observe(req, res.StatusCode, start)
	if err != nil {
		return nil, &TransportError{URI: uri, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug("Helix request completed",
		"method", req.Method(),
		"uri", uri,
		"status", res.StatusCode,
		"bodyLength", len(data),
	)
	return &RawResponse{
		URI:    uri,
		Status: res.StatusCode,
		Header: res.Header,
		Body:   data,
	}, nil
}

func (c *Client) observe(req Request, status int, start time.Time) {
	if c.observer != nil {
		c.observer(req.Method(), req.Path(), status, time.Since(start))
	}
}

// Send executes an Endpoint that has no request body and decodes its response
func Send[D any](ctx context.Context, c *Client, req Endpoint[D], creds Credentials) (*Response[D], error) {
	return send[D](ctx, c, req, nil, creds)
}

// SendWithBody executes an Endpoint whose request body is of type B
func SendWithBody[B any, D any](ctx context.Context, c *Client, req BodyEndpoint[B, D], body B, creds Credentials) (*Response[D], error) {
	data, err := req.EncodeBody(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return send[D](ctx, c, req, data, creds)
}

func send[D any](ctx context.Context, c *Client, req Endpoint[D], body []byte, creds Credentials) (*Response[D], error) {
	raw, err := c.Do(ctx, req, body, creds)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(raw); err != nil {
		return nil, err
	}
	return req.ParseResponse(raw)
}
