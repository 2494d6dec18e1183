package style

import (
	"errors"
	"fmt"
)

// ErrStyleNotFound indicates a name matched no builtin style and no readable file.
var ErrStyleNotFound = errors.New("style not found")

// ErrStyleFormat indicates a style file parsed but violates the schema.
var ErrStyleFormat = errors.New("invalid style format")

// NotFoundError reports the name or path that failed to resolve.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("style %q matches no builtin style and no readable file (builtins: %v)", e.Name, Available())
}

func (e *NotFoundError) Unwrap() error { return ErrStyleNotFound }

// FormatError reports why a style file was rejected.
type FormatError struct {
	Source string // style name or file path
	Reason string
	Err    error // underlying parse error, may be nil
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("style %q: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("style %q: %s", e.Source, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrStyleFormat }

func formatErr(source, format string, args ...any) error {
	return &FormatError{Source: source, Reason: fmt.Sprintf(format, args...)}
}
