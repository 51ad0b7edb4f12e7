// Package wire provides the XML-RPC wire entities and the low-level
// helpers to build and parse XML-RPC documents.
//
// The entities in this package mirror the XML-RPC element tree one
// to one: a [Value] is a <value> element, a [Struct] is a <struct>
// element, and so on. They carry no Go-native semantics beyond
// that. Converting between entities and native Go values, including
// the rules for collapsing single-element results, is the job of the
// xmlrpc package.
//
// You should not need this package unless you want to inspect or
// produce XML-RPC documents at the element level.
package wire
