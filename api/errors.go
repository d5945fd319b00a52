// api/errors.go
package api

import "encoding/json"

const genericErrorMessage = "something went wrong, please try again"

// StatusError is a non-2xx response from the marketplace API. Message is
// taken from the conventional {message} body shape when present.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func newStatusError(code int, body []byte) *StatusError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &StatusError{Code: code, Message: payload.Message}
	}
	return &StatusError{Code: code, Message: genericErrorMessage}
}
