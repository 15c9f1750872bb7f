package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var ErrInvalidBaseURL = errors.New("httpclient: base url must be absolute")

type ErrorMessage struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params"`
}

// APIError is a non-2xx response from the transfers API.
type APIError struct {
	StatusCode int
	Code       string
	Messages   map[string][]ErrorMessage
	Body       []byte
}

type errorBody struct {
	ErrorCode     string                    `json:"error_code"`
	ErrorMessages map[string][]ErrorMessage `json:"error_messages"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Code = eb.ErrorCode
		apiErr.Messages = eb.ErrorMessages
	}

	return apiErr
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "transfers api: status %d", e.StatusCode)

	if e.Code == "" {
		if len(e.Body) > 0 {
			fmt.Fprintf(&b, ": %s", strings.TrimSpace(string(e.Body)))
		}
		return b.String()
	}

	fmt.Fprintf(&b, ": %s", e.Code)

	fields := make([]string, 0, len(e.Messages))
	for field := range e.Messages {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for _, m := range e.Messages[field] {
			fmt.Fprintf(&b, "; %s: %s", field, m.Message)
		}
	}

	return b.String()
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
