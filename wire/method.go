package wire

import "github.com/beevik/etree"

// MethodName is a <methodName> element.
type MethodName string

// Element returns the <methodName> element for n.
func (n MethodName) Element() *etree.Element {
	ret := etree.NewElement("methodName")
	if n != "" {
		ret.SetText(string(n))
	}
	return ret
}

// A MethodCall is a <methodCall> element, the root of a request.
type MethodCall struct {
	Name   MethodName
	Params Params
}

// Element returns the <methodCall> element for c.
func (c MethodCall) Element() *etree.Element {
	ret := etree.NewElement("methodCall")
	ret.AddChild(c.Name.Element())
	ret.AddChild(c.Params.Element())
	return ret
}

// A MethodResponse is a <methodResponse> element, the root of a
// response. It normally holds exactly one [Params].
type MethodResponse []Params

// Element returns the <methodResponse> element for r.
func (r MethodResponse) Element() *etree.Element {
	ret := etree.NewElement("methodResponse")
	for _, ps := range r {
		ret.AddChild(ps.Element())
	}
	return ret
}
