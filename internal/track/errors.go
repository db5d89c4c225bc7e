package track

import (
	"errors"
	"fmt"
)

// Error kinds reported by ErrorKind.
const (
	KindValidation = "validation"
	KindDuplicate  = "duplicate"
	KindInvalidID  = "invalid_id"
	KindNotFound   = "not_found"
	KindBackend    = "backend"
)

// ErrorClassifier allows errors to declare their classification for status mapping.
type ErrorClassifier interface {
	ErrorKind() string
}

// KindOf returns the classification of err, or "" when err does not carry one.
func KindOf(err error) string {
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	return ""
}

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid track: " + e.Reason
	}
	return fmt.Sprintf("invalid track: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) ErrorKind() string { return KindValidation }

// DuplicateError reports an insert whose (platform, externalID) pair already exists.
type DuplicateError struct {
	Platform   string
	ExternalID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("track already exists for platform %q with external id %q", e.Platform, e.ExternalID)
}

func (e *DuplicateError) ErrorKind() string { return KindDuplicate }

// InvalidIDError reports an identifier string that cannot be parsed.
type InvalidIDError struct {
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid track id %q", e.Value)
}

func (e *InvalidIDError) ErrorKind() string { return KindInvalidID }

// NotFoundError reports a well-formed identifier with no matching record.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("track %s not found", e.ID)
}

func (e *NotFoundError) ErrorKind() string { return KindNotFound }

// BackendError wraps a storage failure with the operation that triggered it.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return e.Op + ": storage failure"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *BackendError) Unwrap() error { return e.Err }

func (e *BackendError) ErrorKind() string { return KindBackend }
