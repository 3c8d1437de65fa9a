package internal

import (
	"errors"
	"fmt"
)

// ErrNotEnoughArguments is returned when the query, or the path without piped input, is missing.
var ErrNotEnoughArguments = errors.New("not enough arguments")

// InvalidParameterError reports a flag token that is not in the spelling table.
type InvalidParameterError struct {
	Token string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter (%s)", e.Token)
}

// IoFailureError wraps a failed read of the search source. Its message is the
// underlying error's message, unchanged.
type IoFailureError struct {
	Path string
	Err  error
}

func (e *IoFailureError) Error() string { return e.Err.Error() }
func (e *IoFailureError) Unwrap() error { return e.Err }

// IsUsageError reports whether err comes from bad command-line input.
func IsUsageError(err error) bool {
	var inv *InvalidParameterError
	return errors.Is(err, ErrNotEnoughArguments) || errors.As(err, &inv)
}
