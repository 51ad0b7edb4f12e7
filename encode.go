package xmlrpc

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/danderson/xmlrpc/wire"
)

// An encoder converts native values to wire entities.
type encoder struct {
	maxDepth int
	depth    int
}

func unsupported(format string, args ...any) error {
	return UnsupportedTypeError{fmt.Sprintf(format, args...)}
}

// params returns the argument list for v.
//
// A List is an argument list, and each element becomes its own
// Param. nil is an empty argument list. Any other value is a single
// argument.
func (e *encoder) params(v Value) (wire.Params, error) {
	var args List
	switch v := v.(type) {
	case nil:
	case List:
		args = v
	default:
		args = List{v}
	}

	ret := make(wire.Params, 0, len(args))
	for i, arg := range args {
		val, err := e.value(arg)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		ret = append(ret, wire.Param{val})
	}
	return ret, nil
}

// value returns the <value> for v. A List produces one slot per
// element, anything else produces a single slot.
func (e *encoder) value(v Value) (wire.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.maxDepth {
		return nil, StructuralError{"value", fmt.Errorf("%w (limit %d)", wire.ErrTooDeep, e.maxDepth)}
	}

	items, ok := v.(List)
	if !ok {
		items = List{v}
	} else if len(items) == 0 {
		return nil, unsupported("empty List")
	}

	slots := make([]wire.Slot, 0, len(items))
	for _, item := range items {
		s, err := e.slot(item)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return wire.NewValue(slots...)
}

// slot returns the single <value> child for v.
func (e *encoder) slot(v Value) (wire.Slot, error) {
	switch v := v.(type) {
	case Int:
		return wire.Int(v), nil
	case Float:
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			return nil, unsupported("non-finite Float %v", float64(v))
		}
		return wire.Double(v), nil
	case String:
		if err := checkText("String", string(v)); err != nil {
			return nil, err
		}
		return wire.String(v), nil
	case Map:
		return e.structure(v)
	case List:
		return nil, unsupported("List nested directly in a List")
	case nil:
		return nil, unsupported("nil")
	default:
		return nil, unsupported("%T", v)
	}
}

func (e *encoder) structure(m Map) (wire.Struct, error) {
	ret := make(wire.Struct, 0, len(m))
	for _, f := range m {
		if err := checkText("field name", f.Name); err != nil {
			return nil, err
		}
		val, err := e.value(f.Value)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", f.Name, err)
		}
		ret = append(ret, wire.Member{Name: f.Name, Value: val})
	}
	return ret, nil
}

// checkText returns an error if s cannot be written as XML character
// data, because it is not valid UTF-8 or holds characters outside the
// XML character range.
func checkText(what, s string) error {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, n := utf8.DecodeRuneInString(s[i:]); n == 1 {
				return unsupported("%s with invalid UTF-8 at byte %d", what, i)
			}
		}
		if !isXMLChar(r) {
			return unsupported("%s with character %U at byte %d", what, r, i)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	default:
		return r >= 0x10000 && r <= unicode.MaxRune
	}
}
