package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrMalformedSource = errors.New("malformed source")
	ErrIO              = errors.New("io failure")
)

type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause == nil {
		return e.msg
	}

	return e.msg + ": " + e.cause.Error()
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.cause
}

// NewError creates an error of the given kind with a formatted message.
func NewError(kind error, format string, args ...any) error {
	return errors.WithStack(&kindError{
		kind: kind,
		msg:  fmt.Sprintf(format, args...),
	})
}

// WrapError creates an error of the given kind that keeps cause in its chain.
func WrapError(kind error, cause error, format string, args ...any) error {
	return errors.WithStack(&kindError{
		kind:  kind,
		msg:   fmt.Sprintf(format, args...),
		cause: cause,
	})
}
