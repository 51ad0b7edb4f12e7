package wire

import "github.com/beevik/etree"

// A Param is a <param> element. It normally holds exactly one
// [Value], but may hold none or several.
type Param []Value

// Element returns the <param> element for p.
func (p Param) Element() *etree.Element {
	ret := etree.NewElement("param")
	for _, v := range p {
		ret.AddChild(v.Element())
	}
	return ret
}

// Params is a <params> element: the argument list of a method call,
// or the result list of a method response.
type Params []Param

// Element returns the <params> element for ps.
func (ps Params) Element() *etree.Element {
	ret := etree.NewElement("params")
	for _, p := range ps {
		ret.AddChild(p.Element())
	}
	return ret
}
