package wire

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/mds/mapset"
)

// A Tag is the name of an XML-RPC value type element.
type Tag string

const (
	TagString Tag = "string"
	TagInt    Tag = "int"
	TagFloat  Tag = "float"
	TagDouble Tag = "double"
	TagStruct Tag = "struct"
)

// tags is the set of value types this package understands. TagFloat
// is only ever decoded, encoders always produce TagDouble.
var tags = mapset.New(
	TagString,
	TagInt,
	TagFloat,
	TagDouble,
	TagStruct,
)

// Valid reports whether t is a value type this package supports.
func (t Tag) Valid() bool {
	return tags.Has(t)
}

func (t Tag) String() string {
	return string(t)
}

// Cast converts the text of a leaf element with the given tag to a
// Scalar.
//
// <float> and <double> are synonyms. Leading and trailing whitespace
// is ignored for numeric tags, and is preserved for <string>.
func Cast(tag Tag, text string) (Scalar, error) {
	switch tag {
	case TagString:
		return String(text), nil
	case TagInt:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, CastError{tag, text, unwrapNumErr(err)}
		}
		return Int(i), nil
	case TagFloat, TagDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, CastError{tag, text, unwrapNumErr(err)}
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, CastError{tag, text, errors.New("value is not finite")}
		}
		return Double(f), nil
	default:
		return nil, UnsupportedTypeError{string(tag)}
	}
}

// unwrapNumErr strips the strconv.NumError wrapper, whose message
// repeats the function name and input.
func unwrapNumErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
