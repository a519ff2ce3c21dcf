package core

import (
	"errors"
	"fmt"

	"github.com/mikey-austin/conwrite/pkg/console"
)

// Exit codes for conw.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
	ExitWrite   = 3
	ExitAborted = 4
)

// CLIError carries a user-visible message and exit code.
type CLIError struct {
	Code int
	Msg  string
	Err  error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapError creates a CLIError with an underlying error.
func WrapError(code int, msg string, err error) *CLIError {
	return &CLIError{Code: code, Msg: msg, Err: err}
}

// UsageError creates a CLIError for bad input.
func UsageError(msg string) *CLIError {
	return &CLIError{Code: ExitUsage, Msg: msg}
}

// ExitCode returns the CLI exit code from error.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Code != ExitRuntime {
		return cliErr.Code
	}
	var failure *console.WriteFailure
	if errors.As(err, &failure) {
		return ExitWrite
	}
	return ExitRuntime
}
