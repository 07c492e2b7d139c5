package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned whenever an input violates one of the record invariants.
// Fields lists every violated invariant in declaration order; Err names the first one.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// BoundsError is returned when an operation addresses a position that does not
// exist: advancing a grade past the maximum, or indexing past an answer-key fragment.
type BoundsError struct {
	msg string
}

func NewBoundsError(msg string) error {
	return &BoundsError{msg}
}

func (err BoundsError) Error() string {
	return err.msg
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
