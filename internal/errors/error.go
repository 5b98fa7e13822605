package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind groups error codes by how a caller should react to them
type Kind int

const (
	// KindInternal is any failure that is not one of the domain kinds below
	KindInternal Kind = iota
	// KindValidation means the operation was rejected and nothing changed
	KindValidation
	// KindSecurity covers wrong PINs and frozen accounts; a freeze is itself persisted
	KindSecurity
	// KindPersistence means the operation was applied in memory but is not guaranteed durable
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindSecurity:
		return "security"
	case KindPersistence:
		return "persistence"
	default:
		return "internal"
	}
}

// Error is a domain error carrying a stable code
type Error struct {
	Code    ErrorCode
	Message string
}

// New creates an error with the default message of the code
func New(code ErrorCode) *Error {
	return &Error{Code: code, Message: GetErrorMessage(code)}
}

// Newf creates an error with a custom message
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

// Kind returns the kind of the error code
func (e *Error) Kind() Kind {
	return KindOfCode(e.Code)
}

// DetailedError attaches field-level messages to a domain error
type DetailedError struct {
	Err     error
	Details []string
}

// Detailed wraps err with detail messages. The chain still matches err.
func Detailed(err error, details ...string) error {
	if err == nil || len(details) == 0 {
		return err
	}
	return &DetailedError{Err: err, Details: details}
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// DetailsOf returns the detail messages of the first DetailedError in the chain
func DetailsOf(err error) []string {
	var d *DetailedError
	if stderrors.As(err, &d) {
		return d.Details
	}
	return nil
}

// ErrPersistence is wrapped around every storage failure
var ErrPersistence = New(SystemPersistenceFailure)

// CodeOf returns the code of the first *Error in the chain, or SystemInternalError
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return SystemInternalError
}

// KindOf classifies an error. Persistence wins over any other code in the chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	if stderrors.Is(err, ErrPersistence) {
		return KindPersistence
	}
	return KindOfCode(CodeOf(err))
}

// KindOfCode classifies a code by its prefix
func KindOfCode(code ErrorCode) Kind {
	c := string(code)
	switch {
	case c == string(SystemPersistenceFailure):
		return KindPersistence
	case strings.HasPrefix(c, "AUTH_"):
		return KindSecurity
	case strings.HasPrefix(c, "VALIDATION_"),
		strings.HasPrefix(c, "ACCOUNT_"),
		strings.HasPrefix(c, "UPI_"),
		strings.HasPrefix(c, "MARKET_"),
		strings.HasPrefix(c, "TRADE_"):
		return KindValidation
	default:
		return KindInternal
	}
}

// IsPersistence reports whether err signals an applied but unsaved operation
func IsPersistence(err error) bool {
	return stderrors.Is(err, ErrPersistence)
}
