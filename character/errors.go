package character

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidState is returned when an operation needs an open stroke
	// and the writing has none.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidValue is returned for non-positive canvas dimensions
	// and for strokes without points.
	ErrInvalidValue = errors.New("invalid value")
)

// ParseError reports a malformed document. A parse that fails with a
// ParseError never yields a Character.
type ParseError struct {
	// Offset is the input byte offset at which the error was detected.
	Offset int64
	// Element is the innermost element being processed, if any.
	Element string
	Err     error
}

// NewParseError wraps err as a ParseError
func NewParseError(offset int64, element string, err error) *ParseError {
	return &ParseError{Offset: offset, Element: element, Err: err}
}

func (e *ParseError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("parse error at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("parse error at offset %d in <%s>: %v", e.Offset, e.Element, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause walk through a ParseError
func (e *ParseError) Cause() error {
	return e.Err
}

// IsParseError reports whether err is, or wraps, a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
