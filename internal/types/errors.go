package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks malformed configuration or nonsensical durations.
// Wrap it with context: fmt.Errorf("...: %w", types.ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

// ProbeError means the media engine could not determine what the source is.
// Diagnostic holds the engine's stderr verbatim so operators can tell a
// corrupt file from an unsupported codec.
type ProbeError struct {
	Path       string
	Diagnostic string
	Err        error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v%s", e.Path, e.Err, diagSuffix(e.Diagnostic))
}

func (e *ProbeError) Unwrap() error { return e.Err }

// EncodeError means the engine failed during extraction or concatenation.
type EncodeError struct {
	Output     string
	Diagnostic string
	Err        error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v%s", e.Output, e.Err, diagSuffix(e.Diagnostic))
}

func (e *EncodeError) Unwrap() error { return e.Err }

func diagSuffix(diag string) string {
	diag = strings.TrimSpace(diag)
	if diag == "" {
		return ""
	}
	return "\n" + diag
}
