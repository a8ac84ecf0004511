package pkg

import "fmt"

// AppError is the single error shape handlers return to clients.
//
// Code is a stable machine-readable identifier; Message is the
// human-readable summary rendered in the envelope. Err carries the
// underlying cause for logs and is never sent over the wire.
type AppError struct {
	Code       string
	Message    string
	Suggestion string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the wire envelope: {"error": ..., "details": ..., "suggestion"?: ...}.
type HTTPError struct {
	Error      string `json:"error"`
	Details    string `json:"details"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Error:      e.Code,
		Details:    e.Message,
		Suggestion: e.Suggestion,
	}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// WithSuggestion attaches a client-facing hint to the envelope.
func (e *AppError) WithSuggestion(s string) *AppError {
	e.Suggestion = s
	return e
}
