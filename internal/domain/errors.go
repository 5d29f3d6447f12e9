package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy. Validation failures are recovered locally (error maps on
// the wizard step); the sentinels below propagate to the caller.
var (
	// ErrNotFound: requested resume absent, inactive, or not owned by the
	// caller.
	ErrNotFound = errors.New("resume not found")

	// ErrUnauthenticated: no resolvable caller identity.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrMalformedRecord: a storage row or stored draft could not be
	// decoded. Drafts are silently discarded; storage rows propagate this.
	ErrMalformedRecord = errors.New("malformed resume record")
)

// Validation error types, used to classify per-field failures.
const (
	ErrRequired     = "required"
	ErrInvalidField = "invalid"
	ErrMaxLength    = "max_length"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func NewValidationError(field, message, errType string) ValidationError {
	return ValidationError{Field: field, Message: message, Type: errType}
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// FieldMap flattens the errors into the field→message map the wizard
// attaches to its current step. The first error per field wins.
func (e ValidationErrors) FieldMap() map[string]string {
	m := make(map[string]string, len(e))
	for _, err := range e {
		if _, ok := m[err.Field]; !ok {
			m[err.Field] = err.Message
		}
	}
	return m
}
