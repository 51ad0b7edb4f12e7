package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/danderson/xmlrpc"
	"gopkg.in/yaml.v3"
)

// fromYAML converts a YAML document to a native value. An empty
// document converts to nil.
func fromYAML(doc []byte) (xmlrpc.Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(doc, &n); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if n.Kind == 0 {
		return nil, nil
	}
	return nodeValue(&n)
}

func nodeValue(n *yaml.Node) (xmlrpc.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.ScalarNode:
		return scalarValue(n)
	case yaml.MappingNode:
		ret := xmlrpc.Map{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode || k.ShortTag() == "!!merge" {
				return nil, fmt.Errorf("line %d: mapping keys must be plain scalars", k.Line)
			}
			val, err := nodeValue(v)
			if err != nil {
				return nil, err
			}
			ret = append(ret, xmlrpc.Field{Name: k.Value, Value: val})
		}
		return ret, nil
	case yaml.SequenceNode:
		ret := xmlrpc.List{}
		for _, elt := range n.Content {
			val, err := nodeValue(elt)
			if err != nil {
				return nil, err
			}
			ret = append(ret, val)
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("line %d: unknown YAML node kind %d", n.Line, n.Kind)
	}
}

func scalarValue(n *yaml.Node) (xmlrpc.Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return xmlrpc.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return xmlrpc.Float(f), nil
	case "!!str":
		return xmlrpc.String(n.Value), nil
	default:
		return nil, fmt.Errorf("line %d: %s values cannot be encoded in XML-RPC", n.Line, tag)
	}
}

// valueNode returns the YAML representation of v.
func valueNode(v xmlrpc.Value) *yaml.Node {
	switch v := v.(type) {
	case xmlrpc.Int:
		return scalarNode("!!int", strconv.FormatInt(int64(v), 10))
	case xmlrpc.Float:
		return scalarNode("!!float", strconv.FormatFloat(float64(v), 'g', -1, 64))
	case xmlrpc.String:
		return scalarNode("!!str", string(v))
	case xmlrpc.Map:
		ret := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v {
			ret.Content = append(ret.Content, scalarNode("!!str", f.Name), valueNode(f.Value))
		}
		return ret
	case xmlrpc.List:
		ret := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elt := range v {
			ret.Content = append(ret.Content, valueNode(elt))
		}
		return ret
	case nil:
		return scalarNode("!!null", "null")
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func scalarNode(tag, val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
}

func writeYAML(w io.Writer, n *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}
