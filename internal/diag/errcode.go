package diag

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the fatal failure classes. Boundary code attaches them
// through Errorf so the printed message stays the human-readable text.
var (
	ErrUsage        = errors.New("usage error")
	ErrPrecondition = errors.New("precondition failed")
	ErrRead         = errors.New("read failed")
	ErrWrite        = errors.New("write failed")
)

// Code is a coarse failure class used for log fields.
// It is decoupled from the process exit code.
type Code string

const (
	CodeUnknown      Code = "unknown"
	CodeUsage        Code = "usage"
	CodePrecondition Code = "precondition"
	CodeRead         Code = "read"
	CodeWrite        Code = "write"
	CodeCancel       Code = "cancel"
)

// Classify maps err to a Code using sentinel errors only, never message text.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeUnknown
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCancel
	case errors.Is(err, ErrUsage):
		return CodeUsage
	case errors.Is(err, ErrPrecondition):
		return CodePrecondition
	case errors.Is(err, ErrRead):
		return CodeRead
	case errors.Is(err, ErrWrite):
		return CodeWrite
	default:
		return CodeUnknown
	}
}

// ExitCode is 0 for nil and 1 for every failure class.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Error is a fatal failure carrying its class, a human-readable message and
// an optional cause.
type Error struct {
	Class error
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Class, e.Err}
	}
	return []error{e.Class}
}

// Errorf builds an *Error of the given class. cause may be nil.
func Errorf(class, cause error, format string, a ...any) error {
	return &Error{Class: class, Msg: fmt.Sprintf(format, a...), Err: cause}
}
