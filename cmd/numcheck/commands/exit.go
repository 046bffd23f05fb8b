package commands

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// An error type that includes an exit code
type ExitError struct {
	Code int
	Err  error
}

// Implement the error interface
func (e *ExitError) Error() string {
	return e.Err.Error()
}
func (e *ExitError) Unwrap() error {
	return e.Err
}

func ExitWithCode(code int, err error) *ExitError {
	if err == nil {
		return nil
	}
	return &ExitError{
		Code: code,
		Err:  err,
	}
}

// UsageError marks bad command-line input: wrong argument count, unknown
// flags, or values that do not parse
type UsageError struct{ Err error }

func (e *UsageError) Error() string {
	return e.Err.Error()
}
func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitFailure
}

// parseInt parses a base-10 int64 command-line argument
func parseInt(arg string) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, &UsageError{fmt.Errorf("invalid integer %q: expected a base-10 value between %d and %d", arg, int64(math.MinInt64), int64(math.MaxInt64))}
	}
	return n, nil
}

// usageArgs wraps a cobra argument validator so its failures are usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{err}
		}
		return nil
	}
}
