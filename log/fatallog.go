package log

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Errors that abort startup.
var (
	ErrMalformedConfig    = newFatalErrorWithReason("ERR_MALFORMED_CONFIG", "config file is malformed")
	ErrBadFlags           = newFatalErrorWithReason("ERR_BAD_FLAGS", "bad CLI flags")
	ErrInvalidCheckpoints = newFatalErrorWithReason("ERR_INVALID_CHECKPOINTS", "checkpoint data is invalid")
	ErrUnknownPreset      = newFatalErrorWithArgs("ERR_UNKNOWN_PRESET", "unknown preset %q, options %v")
)

// FatalError is an error the process can not recover from. Code is stable and
// meant for scripts wrapping the CLI.
type FatalError struct {
	Code   string
	Text   string
	Args   []any
	Reason error
}

func newFatalErrorWithArgs(code, text string) func(args ...any) *FatalError {
	return func(args ...any) *FatalError {
		return &FatalError{
			Code: code,
			Text: text,
			Args: args,
		}
	}
}

func newFatalErrorWithReason(code, text string) func(reason error) *FatalError {
	return func(reason error) *FatalError {
		return &FatalError{
			Code:   code,
			Text:   text,
			Reason: reason,
		}
	}
}

func (fe *FatalError) Error() string {
	if fe.Reason != nil {
		return fmt.Sprintf("%v: %v", fe.Text, fe.Reason)
	}
	return fmt.Sprintf(fe.Text, fe.Args...)
}

func (fe *FatalError) Unwrap() error {
	return fe.Reason
}

// MarshalLogObject implements logging encoder for FatalError.
func (fe *FatalError) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("code", fe.Code)
	encoder.AddString("error", fe.Error())
	return nil
}
