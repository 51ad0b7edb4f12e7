package main

import (
	"fmt"
	"io"

	"github.com/creachadair/mds/value"
	"github.com/danderson/xmlrpc"
	"github.com/fxamacker/cbor/v2"
	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

// result is a decoded XML-RPC document. Method is present only for
// method calls, in which case Value is the argument list.
type result struct {
	Method value.Maybe[string]
	Value  xmlrpc.Value
}

func callResult(c *xmlrpc.Call) result {
	return result{
		Method: value.Just(c.Method),
		Value:  c.Params,
	}
}

// formats are the output formats of the decode command.
var formats = map[string]func(io.Writer, result) error{
	"yaml":   formatYAML,
	"pretty": formatPretty,
	"cbor":   formatCBOR,
}

func formatYAML(w io.Writer, r result) error {
	n := valueNode(r.Value)
	if m, ok := r.Method.GetOK(); ok {
		n = &yaml.Node{
			Kind: yaml.MappingNode,
			Tag:  "!!map",
			Content: []*yaml.Node{
				scalarNode("!!str", "method"), scalarNode("!!str", m),
				scalarNode("!!str", "params"), n,
			},
		}
	}
	return writeYAML(w, n)
}

func formatPretty(w io.Writer, r result) error {
	if m, ok := r.Method.GetOK(); ok {
		_, err := pretty.Fprintf(w, "%s %# v\n", m, r.Value)
		return err
	}
	_, err := pretty.Fprintf(w, "%# v\n", r.Value)
	return err
}

var cborMode = func() cbor.EncMode {
	opts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsEmpty,
	}
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("creating CBOR encoder mode: %v", err))
	}
	return mode
}()

func formatCBOR(w io.Writer, r result) error {
	var v any = cborValue(r.Value)
	if m, ok := r.Method.GetOK(); ok {
		v = map[string]any{
			"method": m,
			"params": v,
		}
	}
	return cborMode.NewEncoder(w).Encode(v)
}

// cborValue converts v to plain Go values. Maps become map[string]any,
// keeping the last value of duplicate names.
func cborValue(v xmlrpc.Value) any {
	switch v := v.(type) {
	case xmlrpc.Int:
		return int64(v)
	case xmlrpc.Float:
		return float64(v)
	case xmlrpc.String:
		return string(v)
	case xmlrpc.Map:
		ret := make(map[string]any, len(v))
		for _, f := range v {
			ret[f.Name] = cborValue(f.Value)
		}
		return ret
	case xmlrpc.List:
		ret := make([]any, 0, len(v))
		for _, elt := range v {
			ret = append(ret, cborValue(elt))
		}
		return ret
	default:
		return nil
	}
}
