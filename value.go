package xmlrpc

// A Value is a native XML-RPC value: [Int], [Float], [String], [Map]
// or [List].
type Value interface {
	isValue()
}

// Int is an integer value. It encodes as <int>.
type Int int64

// Float is a floating point value. It encodes as <double>.
type Float float64

// String is a string value. It encodes as <string>.
type String string

// A Map is an ordered collection of named values. It encodes as
// <struct>, with one <member> per field, in order.
//
// Field names need not be unique. All fields are encoded, but the
// decoder keeps only the last value for each name; see [Map.Set].
type Map []Field

// A Field is one named value of a [Map].
type Field struct {
	Name  string
	Value Value
}

// A List is an ordered sequence of values.
//
// At the top level of an encoding, a List is an argument list: each
// element becomes its own <param>. Anywhere else, a List encodes as
// a single <value> element with one child per element, a
// non-standard extension understood by this package's decoder.
type List []Value

func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}
func (Map) isValue()    {}
func (List) isValue()   {}

// Get returns the value of the last field named name.
func (m Map) Get(name string) (Value, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Name == name {
			return m[i].Value, true
		}
	}
	return nil, false
}

// Set sets the value of the field named name. If m already has such
// a field, the first one is updated in place. Otherwise a new field
// is appended.
func (m *Map) Set(name string, v Value) {
	for i := range *m {
		if (*m)[i].Name == name {
			(*m)[i].Value = v
			return
		}
	}
	*m = append(*m, Field{name, v})
}

// Keys returns the field names of m, in order.
func (m Map) Keys() []string {
	ret := make([]string, 0, len(m))
	for _, f := range m {
		ret = append(ret, f.Name)
	}
	return ret
}
