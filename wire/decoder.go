package wire

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// DefaultMaxDepth is the nesting limit used when
// [Decoder.MaxDepth] is zero.
const DefaultMaxDepth = 64

// A Decoder builds wire entities from a parsed element tree.
//
// Each method checks that the element it is given has the expected
// tag, and returns a [StructuralError] otherwise.
type Decoder struct {
	// MaxDepth is the maximum number of nested <value> elements the
	// decoder accepts. If zero, DefaultMaxDepth is used.
	MaxDepth int

	// depth is the number of <value> elements currently being
	// decoded.
	depth int
}

func (d *Decoder) maxDepth() int {
	if d.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return d.MaxDepth
}

func expect(e *etree.Element, tag string) error {
	if e == nil {
		return structErr(tag, "element not found")
	}
	if e.Tag != tag {
		return structErr(tag, "unexpected element <%s>", e.Tag)
	}
	return nil
}

// text returns the concatenated character data directly under e.
func text(e *etree.Element) string {
	var ret strings.Builder
	for _, tok := range e.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			ret.WriteString(cd.Data)
		}
	}
	return ret.String()
}

// Value decodes a <value> element.
func (d *Decoder) Value(e *etree.Element) (Value, error) {
	if err := expect(e, "value"); err != nil {
		return nil, err
	}
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.maxDepth() {
		return nil, StructuralError{"value", fmt.Errorf("%w (limit %d)", ErrTooDeep, d.maxDepth())}
	}

	children := e.ChildElements()
	if len(children) == 0 {
		return nil, structErr("value", "value has no children")
	}
	slots := make([]Slot, 0, len(children))
	for _, child := range children {
		tag := Tag(child.Tag)
		if !tag.Valid() {
			return nil, UnsupportedTypeError{child.Tag}
		}
		if tag == TagStruct {
			s, err := d.Struct(child)
			if err != nil {
				return nil, err
			}
			slots = append(slots, s)
			continue
		}
		s, err := Cast(tag, text(child))
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return NewValue(slots...)
}

// Struct decodes a <struct> element.
func (d *Decoder) Struct(e *etree.Element) (Struct, error) {
	if err := expect(e, "struct"); err != nil {
		return nil, err
	}
	members := e.SelectElements("member")
	ret := make(Struct, 0, len(members))
	for _, m := range members {
		member, err := d.Member(m)
		if err != nil {
			return nil, err
		}
		ret = append(ret, member)
	}
	return ret, nil
}

// Member decodes a <member> element. The member must have a <name>
// and a <value> child. If there are several, the first one is used.
func (d *Decoder) Member(e *etree.Element) (Member, error) {
	if err := expect(e, "member"); err != nil {
		return Member{}, err
	}
	name := e.SelectElement("name")
	if name == nil {
		return Member{}, structErr("member", "missing <name>")
	}
	val := e.SelectElement("value")
	if val == nil {
		return Member{}, structErr("member", "missing <value>")
	}
	v, err := d.Value(val)
	if err != nil {
		return Member{}, fmt.Errorf("member %q: %w", text(name), err)
	}
	return Member{text(name), v}, nil
}

// Param decodes a <param> element.
func (d *Decoder) Param(e *etree.Element) (Param, error) {
	if err := expect(e, "param"); err != nil {
		return nil, err
	}
	vals := e.SelectElements("value")
	ret := make(Param, 0, len(vals))
	for _, val := range vals {
		v, err := d.Value(val)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// Params decodes a <params> element.
func (d *Decoder) Params(e *etree.Element) (Params, error) {
	if err := expect(e, "params"); err != nil {
		return nil, err
	}
	params := e.SelectElements("param")
	ret := make(Params, 0, len(params))
	for i, param := range params {
		p, err := d.Param(param)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		ret = append(ret, p)
	}
	return ret, nil
}

// MethodName decodes a <methodName> element.
func (d *Decoder) MethodName(e *etree.Element) (MethodName, error) {
	if err := expect(e, "methodName"); err != nil {
		return "", err
	}
	return MethodName(text(e)), nil
}

// MethodCall decodes a <methodCall> element. A <methodName> child is
// required. A missing <params> child decodes as an empty [Params].
func (d *Decoder) MethodCall(e *etree.Element) (MethodCall, error) {
	if err := expect(e, "methodCall"); err != nil {
		return MethodCall{}, err
	}
	nameElt := e.SelectElement("methodName")
	if nameElt == nil {
		return MethodCall{}, structErr("methodCall", "missing <methodName>")
	}
	name, err := d.MethodName(nameElt)
	if err != nil {
		return MethodCall{}, err
	}

	ret := MethodCall{Name: name, Params: Params{}}
	if paramsElt := e.SelectElement("params"); paramsElt != nil {
		ret.Params, err = d.Params(paramsElt)
		if err != nil {
			return MethodCall{}, err
		}
	}
	return ret, nil
}

// MethodResponse decodes a <methodResponse> element.
func (d *Decoder) MethodResponse(e *etree.Element) (MethodResponse, error) {
	if err := expect(e, "methodResponse"); err != nil {
		return nil, err
	}
	groups := e.SelectElements("params")
	ret := make(MethodResponse, 0, len(groups))
	for _, g := range groups {
		ps, err := d.Params(g)
		if err != nil {
			return nil, err
		}
		ret = append(ret, ps)
	}
	return ret, nil
}
