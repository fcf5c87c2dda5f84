package toolkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotConfigured is returned when no server URL has been configured.
var ErrNotConfigured = errors.New("toolkit server URL is not configured")

// Error is a non-2xx response from the toolkit backend.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("toolkit request failed: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var tkErr *Error
	return errors.As(err, &tkErr) && tkErr.StatusCode == http.StatusNotFound
}

// odataErrorEnvelope covers both the verbose ("odata.error") and the JSON
// light ("error") error payloads.
type odataErrorEnvelope struct {
	Verbose *odataError `json:"odata.error"`
	Light   *odataError `json:"error"`
}

type odataError struct {
	Code    string          `json:"code"`
	Message json.RawMessage `json:"message"`
}

// message handles both {"message": {"value": "..."}} and {"message": "..."}.
func (e *odataError) message() string {
	if len(e.Message) == 0 {
		return ""
	}
	var nested struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(e.Message, &nested); err == nil && nested.Value != "" {
		return nested.Value
	}
	var plain string
	if err := json.Unmarshal(e.Message, &plain); err == nil {
		return plain
	}
	return ""
}

// parseError builds an *Error from a failed response body.
func parseError(status int, body []byte) *Error {
	out := &Error{StatusCode: status}
	var env odataErrorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return out
	}
	odErr := env.Verbose
	if odErr == nil {
		odErr = env.Light
	}
	if odErr != nil {
		out.Code = odErr.Code
		out.Message = odErr.message()
	}
	return out
}
