package wire

import "github.com/beevik/etree"

// A Struct is a <struct> element.
//
// Member names are not required to be unique, and members are
// encoded in order.
type Struct []Member

// A Member is a <member> of a [Struct].
type Member struct {
	Name  string
	Value Value
}

func (s Struct) element() *etree.Element { return s.Element() }

// Element returns the <struct> element for s.
func (s Struct) Element() *etree.Element {
	ret := etree.NewElement("struct")
	for _, m := range s {
		ret.AddChild(m.Element())
	}
	return ret
}

// Element returns the <member> element for m.
func (m Member) Element() *etree.Element {
	ret := etree.NewElement("member")
	name := ret.CreateElement("name")
	if m.Name != "" {
		name.SetText(m.Name)
	}
	ret.AddChild(m.Value.Element())
	return ret
}
