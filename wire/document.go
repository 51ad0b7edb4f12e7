package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// A Document is an XML-RPC document under construction.
type Document struct {
	label string
	enc   encoding.Encoding
	doc   *etree.Document
}

// NewDocument returns an empty XML 1.0 document that declares, and
// is serialized in, the given character encoding. charset is an IANA
// charset name such as "utf-8" or "iso-8859-1".
func NewDocument(charset string) (*Document, error) {
	enc, err := lookupEncoding(charset)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	// Canonical text escaping writes \r as &#xD;, which survives the
	// parser's line ending normalization.
	doc.WriteSettings.CanonicalText = true
	doc.CreateProcInst("xml", fmt.Sprintf(`version="1.0" encoding="%s"`, charset))
	doc.CreateText("\n")
	return &Document{
		label: charset,
		enc:   enc,
		doc:   doc,
	}, nil
}

// SetRoot sets the document's root element.
func (d *Document) SetRoot(root *etree.Element) {
	d.doc.SetRoot(root)
	d.doc.CreateText("\n")
}

// Bytes serializes the document.
//
// Characters that the document's encoding cannot represent are
// written as numeric character references.
func (d *Document) Bytes() ([]byte, error) {
	var out bytes.Buffer
	if _, err := d.doc.WriteTo(&out); err != nil {
		return nil, err
	}
	if d.enc == unicode.UTF8 {
		return out.Bytes(), nil
	}
	ret, err := encoding.HTMLEscapeUnsupported(d.enc.NewEncoder()).Bytes(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encoding document as %s: %w", d.label, err)
	}
	return ret, nil
}

// Parse parses doc and returns its root element.
//
// The document's declared encoding is honored. Parse returns a
// [ParseError] if doc is not well-formed, or has no root element.
func Parse(doc []byte) (*etree.Element, error) {
	d := etree.NewDocument()
	d.ReadSettings.CharsetReader = charsetReader
	if err := d.ReadFromBytes(doc); err != nil {
		return nil, ParseError{err}
	}
	root := d.Root()
	if root == nil {
		return nil, ParseError{errors.New("no root element")}
	}
	return root, nil
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(strings.TrimSpace(label))
	if err != nil {
		return nil, fmt.Errorf("unknown document encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported document encoding %q", label)
	}
	return enc, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := lookupEncoding(label)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return input, nil
	}
	return enc.NewDecoder().Reader(input), nil
}
