package xmlrpc

import (
	"errors"

	"github.com/beevik/etree"
	"github.com/danderson/xmlrpc/wire"
	"go.uber.org/zap"
)

// DefaultMaxDepth is the nesting limit used when [Codec.MaxDepth] is
// zero.
const DefaultMaxDepth = wire.DefaultMaxDepth

// Default document encodings.
const (
	// DefaultParamsEncoding is the encoding used by
	// [Codec.EncodeParams] and [Codec.EncodeResponse].
	DefaultParamsEncoding = "utf-8"
	// DefaultCallEncoding is the encoding used by [Codec.EncodeCall].
	DefaultCallEncoding = "iso-8859-1"
)

// A Codec encodes and decodes XML-RPC documents.
//
// The zero Codec is ready to use.
type Codec struct {
	// Encoding is the character encoding that encoded documents
	// declare and use, as an IANA charset name. If empty, each
	// operation uses its own default.
	Encoding string
	// MaxDepth is the maximum nesting depth of values, in both
	// directions. If zero, DefaultMaxDepth is used.
	MaxDepth int
	// Logger receives debug logs of codec operations. If nil, nothing
	// is logged.
	Logger *zap.Logger
}

// A Call is a decoded method call.
type Call struct {
	// Method is the name of the method being called.
	Method string
	// Params are the call's arguments, one element per <param>.
	Params List
}

func (c Codec) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c Codec) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

func (c Codec) encoder() *encoder {
	return &encoder{maxDepth: c.maxDepth()}
}

func (c Codec) decoder() *wire.Decoder {
	return &wire.Decoder{MaxDepth: c.maxDepth()}
}

func (c Codec) fail(op string, err error) error {
	c.log().Debug("xmlrpc "+op+" failed", zap.Error(err))
	return &Error{op, err}
}

func (c Codec) serialize(root *etree.Element, defaultEncoding string) ([]byte, error) {
	enc := c.Encoding
	if enc == "" {
		enc = defaultEncoding
	}
	doc, err := wire.NewDocument(enc)
	if err != nil {
		return nil, err
	}
	doc.SetRoot(root)
	return doc.Bytes()
}

// EncodeParams returns a <params> document holding v.
//
// If v is a [List], each of its elements is encoded as a separate
// <param>. If v is nil, the document has no <param>. Otherwise, v is
// encoded as the only <param>.
//
// The document is encoded as DefaultParamsEncoding unless
// [Codec.Encoding] says otherwise.
func (c Codec) EncodeParams(v Value) ([]byte, error) {
	const op = "encode params"
	ps, err := c.encoder().params(v)
	if err != nil {
		return nil, c.fail(op, err)
	}
	ret, err := c.serialize(ps.Element(), DefaultParamsEncoding)
	if err != nil {
		return nil, c.fail(op, err)
	}
	c.log().Debug("xmlrpc encoded params", zap.Int("params", len(ps)), zap.Int("bytes", len(ret)))
	return ret, nil
}

// EncodeResponse returns a <methodResponse> document holding v, with
// the same argument list rules as [Codec.EncodeParams].
func (c Codec) EncodeResponse(v Value) ([]byte, error) {
	const op = "encode response"
	ps, err := c.encoder().params(v)
	if err != nil {
		return nil, c.fail(op, err)
	}
	ret, err := c.serialize(wire.MethodResponse{ps}.Element(), DefaultParamsEncoding)
	if err != nil {
		return nil, c.fail(op, err)
	}
	c.log().Debug("xmlrpc encoded response", zap.Int("params", len(ps)), zap.Int("bytes", len(ret)))
	return ret, nil
}

// EncodeCall returns a <methodCall> document that calls method with
// v, with the same argument list rules as [Codec.EncodeParams].
//
// The document is encoded as DefaultCallEncoding unless
// [Codec.Encoding] says otherwise.
func (c Codec) EncodeCall(method string, v Value) ([]byte, error) {
	const op = "encode call"
	if method == "" {
		return nil, c.fail(op, StructuralError{"methodName", errors.New("empty method name")})
	}
	if err := checkText("method name", method); err != nil {
		return nil, c.fail(op, err)
	}
	ps, err := c.encoder().params(v)
	if err != nil {
		return nil, c.fail(op, err)
	}
	call := wire.MethodCall{
		Name:   wire.MethodName(method),
		Params: ps,
	}
	ret, err := c.serialize(call.Element(), DefaultCallEncoding)
	if err != nil {
		return nil, c.fail(op, err)
	}
	c.log().Debug("xmlrpc encoded call", zap.String("method", method), zap.Int("params", len(ps)), zap.Int("bytes", len(ret)))
	return ret, nil
}

// DecodeParams decodes a <params> or <methodResponse> document.
//
// Each <param> decodes to the native value of its only <value>, or
// to a [List] if it has zero or several values. Likewise, a <value>
// decodes to the native value of its only child, or to a List if it
// has several. A <struct> decodes to a [Map].
//
// If the document has exactly one <param>, DecodeParams returns its
// value. Otherwise it returns a List with one element per <param>.
func (c Codec) DecodeParams(doc []byte) (Value, error) {
	const op = "decode params"
	root, err := wire.Parse(doc)
	if err != nil {
		return nil, c.fail(op, err)
	}

	d := c.decoder()
	var groups []wire.Params
	if root.Tag == "methodResponse" {
		resp, err := d.MethodResponse(root)
		if err != nil {
			return nil, c.fail(op, err)
		}
		groups = resp
	} else {
		ps, err := d.Params(root)
		if err != nil {
			return nil, c.fail(op, err)
		}
		groups = []wire.Params{ps}
	}

	items := List{}
	for _, ps := range groups {
		items = append(items, flattenParams(ps)...)
	}
	c.log().Debug("xmlrpc decoded params", zap.String("root", root.Tag), zap.Int("params", len(items)), zap.Int("bytes", len(doc)))
	return collapse(items), nil
}

// DecodeCall decodes a <methodCall> document.
//
// Each <param> decodes as described in [Codec.DecodeParams]. Unlike
// DecodeParams, the returned Params always has one element per
// <param>, even if there is only one.
func (c Codec) DecodeCall(doc []byte) (*Call, error) {
	const op = "decode call"
	root, err := wire.Parse(doc)
	if err != nil {
		return nil, c.fail(op, err)
	}
	call, err := c.decoder().MethodCall(root)
	if err != nil {
		return nil, c.fail(op, err)
	}
	ret := &Call{
		Method: string(call.Name),
		Params: flattenParams(call.Params),
	}
	c.log().Debug("xmlrpc decoded call", zap.String("method", ret.Method), zap.Int("params", len(ret.Params)), zap.Int("bytes", len(doc)))
	return ret, nil
}

// EncodeParams encodes v with the zero [Codec].
func EncodeParams(v Value) ([]byte, error) {
	return Codec{}.EncodeParams(v)
}

// EncodeResponse encodes v with the zero [Codec].
func EncodeResponse(v Value) ([]byte, error) {
	return Codec{}.EncodeResponse(v)
}

// EncodeCall encodes a call to method with the zero [Codec].
func EncodeCall(method string, v Value) ([]byte, error) {
	return Codec{}.EncodeCall(method, v)
}

// DecodeParams decodes doc with the zero [Codec].
func DecodeParams(doc []byte) (Value, error) {
	return Codec{}.DecodeParams(doc)
}

// DecodeCall decodes doc with the zero [Codec].
func DecodeCall(doc []byte) (*Call, error) {
	return Codec{}.DecodeCall(doc)
}
