package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// genericErrorMessage is the fallback shown when the response body carries no
// usable error description.
const genericErrorMessage = "Request failed"

// APIError is a non-2xx response from the service. Message is taken from the
// body's "error" or "detail" field when present, else from the first
// field-level validation array, else a generic fallback. Fields holds
// per-field validation messages keyed by field name (e.g. "username") when
// the server returned them.
//
// APIError wraps the status-class sentinel (ErrBadRequest, ErrUnauthorized,
// ...) so errors.Is works across the transport boundary.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
	RawBody    []byte

	sentinel error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

// FieldErrors returns the per-field validation messages carried by err, or
// nil if err is not an *APIError with field errors.
func FieldErrors(err error) map[string]string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return nil
	}
	return apiErr.Fields
}

// mapHTTPError converts a non-2xx resty response into an *APIError wrapping
// the matching sentinel. 2xx responses yield nil.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := resp.Body()
	message, fields := extractErrorMessage(body)
	if message == "" {
		message = genericErrorMessage
	}

	return &APIError{
		StatusCode: code,
		Message:    message,
		Fields:     fields,
		RawBody:    body,
		sentinel:   sentinelForStatus(code),
	}
}

func sentinelForStatus(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}
	if code >= http.StatusInternalServerError {
		return ErrServerError
	}
	return ErrBadRequest
}

// extractErrorMessage pulls a human-readable message out of an arbitrary
// error body. The service answers either {"error": "..."}, {"detail": "..."},
// or a DRF-style field map {"username": ["Username already taken."]}.
func extractErrorMessage(body []byte) (string, map[string]string) {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return "", nil
	}

	if msg := gjson.GetBytes(body, "error"); msg.Type == gjson.String {
		return msg.String(), nil
	}
	if msg := gjson.GetBytes(body, "detail"); msg.Type == gjson.String {
		return msg.String(), nil
	}

	var fields map[string]string
	var first string
	gjson.ParseBytes(body).ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			return true
		}
		arr := value.Array()
		if len(arr) == 0 || arr[0].Type != gjson.String {
			return true
		}
		if fields == nil {
			fields = make(map[string]string)
		}
		fields[key.String()] = arr[0].String()
		if first == "" {
			first = fmt.Sprintf("%s: %s", key.String(), arr[0].String())
		}
		return true
	})

	return first, fields
}
