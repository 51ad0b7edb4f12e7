package xmlrpc

import (
	"fmt"

	"github.com/danderson/xmlrpc/wire"
)

// collapse returns the sole element of vs, or vs as a List if it
// doesn't have exactly one element.
func collapse(vs []Value) Value {
	if len(vs) == 1 {
		return vs[0]
	}
	return List(vs)
}

// flattenValue returns the native value of v: the native value of its
// only slot, or a List of the native values of all its slots.
func flattenValue(v wire.Value) Value {
	ret := make([]Value, 0, len(v))
	for _, s := range v {
		ret = append(ret, flattenSlot(s))
	}
	return collapse(ret)
}

// flattenValues returns the native values of vs, without collapsing.
func flattenValues(vs []wire.Value) []Value {
	ret := make([]Value, 0, len(vs))
	for _, v := range vs {
		ret = append(ret, flattenValue(v))
	}
	return ret
}

func flattenSlot(s wire.Slot) Value {
	switch s := s.(type) {
	case wire.Int:
		return Int(s)
	case wire.Double:
		return Float(s)
	case wire.String:
		return String(s)
	case wire.Struct:
		ret := make(Map, 0, len(s))
		for _, m := range s {
			ret.Set(m.Name, flattenValue(m.Value))
		}
		return ret
	default:
		panic(fmt.Sprintf("unknown wire slot type %T", s))
	}
}

// flattenParam returns the native value of p: the native value of its
// only value, or a List of the native values of all its values.
func flattenParam(p wire.Param) Value {
	return collapse(flattenValues(p))
}

// flattenParams returns the native values of ps, one per param.
func flattenParams(ps wire.Params) List {
	ret := make(List, 0, len(ps))
	for _, p := range ps {
		ret = append(ret, flattenParam(p))
	}
	return ret
}
