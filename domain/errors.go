package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors keep the failure kinds distinct internally even though
// the HTTP contract collapses most of them into the same envelope shape.
var (
	// ErrNoRecord means a lookup or a list query matched nothing.
	ErrNoRecord = errors.New("no matching record")
	// ErrInvalidSession means the presented token resolved to no live session.
	ErrInvalidSession = errors.New("invalid session")
	// ErrInvalidUser means login credentials matched no account.
	ErrInvalidUser = errors.New("invalid username or password")
	// ErrDeniedPermission means the acting user is not allowed the operation.
	ErrDeniedPermission = errors.New("permission denied")
	// ErrInvalidID means a caller-supplied document id is malformed.
	ErrInvalidID = errors.New("malformed identifier")
	// ErrInvalidPage means the page parameter is not a positive integer.
	ErrInvalidPage = errors.New("invalid page number")
	// ErrTitleTaken means an incident title collides with another record.
	ErrTitleTaken = errors.New("title already in use")
)

// FieldError is a single field-level validation failure with its
// machine-readable code, e.g. {Field: "username", Code: "empty.username"}.
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

// ValidationError aggregates the field-level failures of one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	codes := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		codes[i] = f.Code
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(codes, ", "))
}

// NewValidationError builds a ValidationError from field failures.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
