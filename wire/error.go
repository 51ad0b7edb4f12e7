package wire

import (
	"errors"
	"fmt"
)

// ErrTooDeep is the reason given in a [StructuralError] when values
// are nested deeper than the configured limit.
var ErrTooDeep = errors.New("value nesting too deep")

// StructuralError is the error returned when an element is missing,
// or is not the element expected at its position.
type StructuralError struct {
	// Tag is the name of the element being processed.
	Tag string
	// Reason explains what is wrong with the element.
	Reason error
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("invalid <%s>: %s", e.Tag, e.Reason)
}

func (e StructuralError) Unwrap() error {
	return e.Reason
}

func structErr(tag string, reason string, args ...any) error {
	return StructuralError{tag, fmt.Errorf(reason, args...)}
}

// UnsupportedTypeError is the error returned when a value has no
// XML-RPC representation, or a document uses a leaf type that is not
// supported.
type UnsupportedTypeError struct {
	// Type is the name of the offending native type or wire tag.
	Type string
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported value type %s", e.Type)
}

// CastError is the error returned when the text of a leaf element
// cannot be converted to the type its tag names.
type CastError struct {
	// Tag is the leaf element's tag.
	Tag Tag
	// Text is the leaf element's text content.
	Text string
	// Err is the underlying conversion error.
	Err error
}

func (e CastError) Error() string {
	return fmt.Sprintf("cannot cast %q to <%s>: %s", e.Text, e.Tag, e.Err)
}

func (e CastError) Unwrap() error {
	return e.Err
}

// ParseError is the error returned when a document is not
// well-formed XML.
type ParseError struct {
	Err error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("malformed document: %s", e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}
