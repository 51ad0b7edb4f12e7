package xmlrpc

import (
	"fmt"

	"github.com/danderson/xmlrpc/wire"
)

// Error is the error returned by all encoding and decoding
// functions. Use [errors.As] to get at the specific failure:
// [StructuralError], [UnsupportedTypeError], [CastError] or
// [ParseError].
type Error struct {
	// Op is the operation that failed, e.g. "decode call".
	Op string
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("xmlrpc %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type (
	// StructuralError is returned when a document is missing a
	// required element, or has an unexpected element where another
	// is required.
	StructuralError = wire.StructuralError
	// UnsupportedTypeError is returned when a value has no XML-RPC
	// representation, or a document uses an unsupported value type.
	UnsupportedTypeError = wire.UnsupportedTypeError
	// CastError is returned when a leaf element's text is not valid
	// for its type.
	CastError = wire.CastError
	// ParseError is returned when a document is not well-formed XML.
	ParseError = wire.ParseError
)

// ErrTooDeep is wrapped by the [StructuralError] returned when values
// are nested more deeply than [Codec.MaxDepth] allows.
var ErrTooDeep = wire.ErrTooDeep
