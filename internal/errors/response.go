package errors

import (
	"encoding/json"
	"fmt"
)

// Exit statuses returned by the command layer for each error kind
const (
	ExitOK          = 0
	ExitInternal    = 1
	ExitRejected    = 3
	ExitSecurity    = 4
	ExitPersistence = 5
)

// ErrorResponse represents the standardized error report printed by the command layer
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Kind:    KindOfCode(code).String(),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// FromError builds a response from any error returned by the engine.
// Domain errors keep their message and any attached details; anything else is
// reported as an internal error and the raw text goes to the details.
func FromError(err error, traceID string) *ErrorResponse {
	code := CodeOf(err)
	if IsPersistence(err) {
		code = SystemPersistenceFailure
	}
	if code == SystemInternalError {
		return NewErrorResponse(code, traceID, WithDetails(err.Error()))
	}

	opts := []ErrorOption{WithMessage(err.Error())}
	if details := DetailsOf(err); len(details) > 0 {
		opts = append(opts, WithDetails(details...))
	}
	return NewErrorResponse(code, traceID, opts...)
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetExitStatus returns the process exit status for the error code
func GetExitStatus(code ErrorCode) int {
	switch KindOfCode(code) {
	case KindValidation:
		return ExitRejected
	case KindSecurity:
		return ExitSecurity
	case KindPersistence:
		return ExitPersistence
	default:
		return ExitInternal
	}
}

// GetExitStatus returns the exit status for the error response
func (er *ErrorResponse) GetExitStatus() int {
	return GetExitStatus(ErrorCode(er.Error.Code))
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
