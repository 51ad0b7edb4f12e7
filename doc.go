// Package xmlrpc encodes and decodes XML-RPC documents.
//
// Values are described by the [Value] union: [Int], [Float],
// [String], [Map] and [List]. They encode as follows:
//
// Int encodes as <int>, in base 10.
//
// Float encodes as <double>, using the fewest digits that decode back
// to the same float64. Very large and very small numbers use
// scientific notation, e.g. <double>1.0E+20</double>. NaN and
// infinities cannot be encoded.
//
// String encodes as <string>. Strings, field names and method names
// must be valid UTF-8 made of characters that XML allows: tab, line
// feed, carriage return, and code points from U+0020 up, except
// surrogates, U+FFFE and U+FFFF. Other text returns an
// [UnsupportedTypeError]. Carriage returns are written as &#xD; so
// that they survive decoding.
//
// Map encodes as <struct>, with one <member> per field in the Map's
// order. Duplicate field names are encoded as duplicate members.
//
// List has two meanings. At the top level of an encoding, a List is
// the argument list: each element becomes its own <param>. Inside a
// Map, or as an element of the argument list, a List encodes as a
// single <value> with one child element per list element. This is an
// extension to XML-RPC; standard peers expect <array> instead, which
// this package does not support. Lists cannot directly contain other
// Lists, and a List that is not the argument list cannot be empty.
//
// Decoding reverses these rules. Both <double> and <float> decode to
// Float. A <struct> decodes to a Map, keeping the first position and
// the last value of duplicate member names. A <value>, <param> or
// argument list with exactly one element decodes to that element
// alone, and otherwise decodes to a List. <boolean>, <array>,
// <base64>, <dateTime.iso8601>, <i4> and <nil> are not supported, and
// decoding them returns an [UnsupportedTypeError].
//
// A <value> element may hold several <struct> children, or several
// scalar children, but not a mix of both.
//
// All errors returned by this package are of type [*Error].
package xmlrpc
