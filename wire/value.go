package wire

import (
	"errors"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// A Slot is one child of a <value> element: either a [Scalar] or a
// [Struct].
type Slot interface {
	element() *etree.Element
}

// A Scalar is a leaf value: [Int], [Double] or [String].
type Scalar interface {
	Slot
	// Tag returns the element name the scalar encodes as.
	Tag() Tag
	// Text returns the scalar's text content on the wire.
	Text() string
}

// Int is an XML-RPC <int>.
type Int int64

func (Int) Tag() Tag { return TagInt }
func (i Int) Text() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) element() *etree.Element { return leaf(i) }

// Double is an XML-RPC <double>.
type Double float64

func (Double) Tag() Tag { return TagDouble }
func (d Double) Text() string { return FormatDouble(float64(d)) }
func (d Double) element() *etree.Element { return leaf(d) }

// String is an XML-RPC <string>.
type String string

func (String) Tag() Tag { return TagString }
func (s String) Text() string { return string(s) }
func (s String) element() *etree.Element { return leaf(s) }

func leaf(s Scalar) *etree.Element {
	ret := etree.NewElement(string(s.Tag()))
	if txt := s.Text(); txt != "" {
		ret.SetText(txt)
	}
	return ret
}

// FormatDouble returns the wire text of f.
//
// f is written with the fewest digits that parse back to exactly f.
// Numbers with a decimal exponent in [-4, 14) use plain decimal
// notation. Others use scientific notation with an upper-case E, a
// signed exponent, and a mantissa that always has a fractional part,
// e.g. "1.0E+20".
func FormatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		// NaN and Inf have no exponent.
		return s
	}
	if e >= -4 && e < 14 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := "+"
	if e < 0 {
		sign, e = "-", -e
	}
	return mant + "E" + sign + strconv.Itoa(e)
}

// A Value is a <value> element.
//
// A Value usually holds exactly one slot. Values with several slots
// are a non-standard extension that some peers use to send lists.
type Value []Slot

// NewValue returns a Value holding slots.
//
// It returns a [StructuralError] if slots is empty, or if it mixes
// [Struct] and [Scalar] slots.
func NewValue(slots ...Slot) (Value, error) {
	if len(slots) == 0 {
		return nil, StructuralError{"value", errors.New("value has no children")}
	}
	structs := 0
	for _, s := range slots {
		if _, ok := s.(Struct); ok {
			structs++
		}
	}
	if structs > 0 && structs != len(slots) {
		return nil, StructuralError{"value", errors.New("struct and scalar children cannot be mixed")}
	}
	return Value(slots), nil
}

// Element returns the <value> element for v.
func (v Value) Element() *etree.Element {
	ret := etree.NewElement("value")
	for _, s := range v {
		ret.AddChild(s.element())
	}
	return ret
}
