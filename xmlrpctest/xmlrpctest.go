// Package xmlrpctest provides helpers for tests that handle XML-RPC
// documents.
package xmlrpctest

import (
	"regexp"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

var (
	betweenTags = regexp.MustCompile(`>\s+<`)
	beforeTag   = regexp.MustCompile(`\s+<`)
)

// Compact removes the indentation and line breaks from an indented
// XML document, so that it can be compared to encoder output.
//
// Compact is only meant for test fixtures: whitespace before a tag is
// removed even when it is part of a text node.
func Compact(doc string) string {
	doc = strings.TrimSpace(doc)
	doc = betweenTags.ReplaceAllString(doc, "><")
	doc = beforeTag.ReplaceAllString(doc, "<")
	return strings.ReplaceAll(doc, "\n", "")
}

// Document returns a serialized document with the given encoding
// declaration and root element, laid out the way the xmlrpc encoders
// produce it. root is compacted first.
func Document(encoding, root string) string {
	return `<?xml version="1.0" encoding="` + encoding + `"?>` + "\n" + Compact(root) + "\n"
}

// Element parses doc and returns its root element. It fails the test
// if doc is not well-formed.
func Element(t testing.TB, doc string) *etree.Element {
	t.Helper()
	d := etree.NewDocument()
	if err := d.ReadFromString(doc); err != nil {
		t.Fatalf("parsing test document: %v", err)
	}
	root := d.Root()
	if root == nil {
		t.Fatalf("test document has no root element:\n%s", doc)
	}
	return root
}

// String serializes e without an XML declaration.
func String(t testing.TB, e *etree.Element) string {
	t.Helper()
	d := etree.NewDocument()
	d.SetRoot(e.Copy())
	ret, err := d.WriteToString()
	if err != nil {
		t.Fatalf("serializing element: %v", err)
	}
	return ret
}
