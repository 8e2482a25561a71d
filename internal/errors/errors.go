package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/jivana-app/jivana/internal/logger"
)

var (
	// ErrIdentityUnavailable indicates no wallet connector / persisted
	// tenant id is available. Features degrade to local-only mode.
	ErrIdentityUnavailable = errors.New("no wallet connected")

	// ErrIdentityRejected indicates the user supplied an invalid or
	// explicitly rejected wallet address.
	ErrIdentityRejected = errors.New("wallet connection rejected")
)

// RemoteError wraps a failed remote store operation. Local state is never
// rolled back when one of these occurs; callers surface a warning and move on.
type RemoteError struct {
	Op    string // e.g. "insert", "select"
	Table string
	Err   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s on %s failed: %v", e.Op, e.Table, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Remote builds a RemoteError.
func Remote(op, table string, err error) error {
	return &RemoteError{Op: op, Table: table, Err: err}
}

// IsRemote reports whether err is (or wraps) a RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// ContentError wraps a failed content completion request: transport error,
// missing credential, non-success status, or unparsable JSON. Retryable;
// callers keep whatever cached content they have.
type ContentError struct {
	Reason string
	Err    error
}

func (e *ContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content service: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("content service: %s", e.Reason)
}

func (e *ContentError) Unwrap() error { return e.Err }

// Content builds a ContentError.
func Content(reason string, err error) error {
	return &ContentError{Reason: reason, Err: err}
}

// IsContent reports whether err is (or wraps) a ContentError.
func IsContent(err error) bool {
	var ce *ContentError
	return errors.As(err, &ce)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}

// Warn logs a warning and prints a user-visible warning line. Used for the
// degrade-don't-fail paths: remote sync failures, stale content, identity
// problems.
func Warn(msg string, err error) {
	logger.Warn(msg, "error", err)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
	}
}
