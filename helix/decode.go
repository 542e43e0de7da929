package helix

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// envelope is the raw form of the standard Helix response body:
//
//	{"data": [...], "pagination": {"cursor": "..."}, "total": 123}
type envelope struct {
	data    json.RawMessage
	hasData bool
	cursor  Cursor
	total   *int64
	other   map[string]json.RawMessage
}

func parseEnvelope(raw *RawResponse) (*envelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw.Body, &fields); err != nil {
		return nil, newDeserializeError(raw, err)
	}

	env := &envelope{}
	if data, ok := fields["data"]; ok {
		env.data = data
		env.hasData = true
		delete(fields, "data")
	}
	if pagination, ok := fields["pagination"]; ok {
		var p struct {
			Cursor Cursor `json:"cursor"`
		}
		if !isNull(pagination) {
			if err := json.Unmarshal(pagination, &p); err != nil {
				return nil, newDeserializeError(raw, fmt.Errorf("invalid pagination: %w", err))
			}
		}
		env.cursor = p.Cursor
		delete(fields, "pagination")
	}
	if total, ok := fields["total"]; ok {
		if !isNull(total) {
			var n int64
			if err := json.Unmarshal(total, &n); err != nil {
				return nil, newDeserializeError(raw, fmt.Errorf("invalid total: %w", err))
			}
			env.total = &n
		}
		delete(fields, "total")
	}
	if len(fields) > 0 {
		env.other = fields
	}
	return env, nil
}

// DecodeData decodes the standard {data, pagination, total} envelope. A data value of
// null is treated as the zero value of D, since some endpoints (e.g. Search Categories)
// return null in place of an empty array.
func DecodeData[D any](raw *RawResponse) (*Response[D], error) {
	env, err := parseEnvelope(raw)
	if err != nil {
		return nil, err
	}
	if !env.hasData {
		return nil, newDeserializeError(raw, errors.New("missing field 'data'"))
	}

	var data D
	if !isNull(env.data) {
		if err := json.Unmarshal(env.data, &data); err != nil {
			return nil, newDeserializeError(raw, err)
		}
	}
	return &Response[D]{
		Data:   data,
		Cursor: env.cursor,
		Total:  env.total,
		Other:  env.other,
	}, nil
}

// DecodeFirst decodes a data array and yields only its first element, for endpoints that
// always operate on a single entity. An empty array is an InvalidResponseError.
func DecodeFirst[T any](raw *RawResponse) (*Response[T], error) {
	res, err := DecodeData[[]T](raw)
	if err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, newInvalidResponseError(raw, "expected at least one element in data")
	}
	return &Response[T]{
		Data:   res.Data[0],
		Cursor: res.Cursor,
		Total:  res.Total,
		Other:  res.Other,
	}, nil
}

// DecodeNoContent handles endpoints that respond with 204 No Content on success: D is the
// success value to yield, and any other status is an InvalidResponseError
func DecodeNoContent[D any](raw *RawResponse, success D) (*Response[D], error) {
	if raw.Status != http.StatusNoContent {
		return nil, newInvalidResponseError(raw, fmt.Sprintf("unexpected status code %d", raw.Status))
	}
	return &Response[D]{Data: success}, nil
}

// checkStatus converts any non-2xx response into an error before the endpoint's own
// decoder sees it
func checkStatus(raw *RawResponse) error {
	if raw.Status >= 200 && raw.Status < 300 {
		return nil
	}
	var apiErr APIError
	if err := json.Unmarshal(raw.Body, &apiErr); err == nil && apiErr.ErrorText != "" {
		apiErr.URI = raw.URI
		if apiErr.Status == 0 {
			apiErr.Status = raw.Status
		}
		return &apiErr
	}
	return newInvalidResponseError(raw, fmt.Sprintf("unexpected status code %d", raw.Status))
}

func newDeserializeError(raw *RawResponse, err error) *DeserializeError {
	return &DeserializeError{
		Body:   string(raw.Body),
		Err:    err,
		URI:    raw.URI,
		Status: raw.Status,
	}
}

func newInvalidResponseError(raw *RawResponse, reason string) *InvalidResponseError {
	return &InvalidResponseError{
		Reason: reason,
		Body:   string(raw.Body),
		URI:    raw.URI,
		Status: raw.Status,
	}
}

func isNull(data json.RawMessage) bool {
	return len(data) == 0 || string(data) == "null"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
