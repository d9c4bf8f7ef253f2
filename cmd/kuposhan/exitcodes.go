package main

import "fmt"

// Exit codes for the kuposhan CLI.
const (
	ExitOK            = 0 // Success.
	ExitInvalidArgs   = 1 // Invalid arguments, flags or config.
	ExitRenderFailure = 2 // Output could not be produced.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitInvalidArgs:
			msg = "kuposhan: invalid arguments"
		case ExitRenderFailure:
			msg = "kuposhan: render failed"
		default:
			msg = "kuposhan: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
