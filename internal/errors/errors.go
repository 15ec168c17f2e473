// Package errors is the single import point for error handling in chaintrace.
// Sentinels and matching come from the standard library; wrapping attaches a
// pkg/errors stack so the 500 log line shows where a failure started.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New is used for sentinels, which carry no stack.
func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with a stack trace and message. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack returns nil for a nil err.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats a new error carrying a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
