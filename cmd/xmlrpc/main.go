package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/danderson/xmlrpc"
	"github.com/danderson/xmlrpc/wire"
	"go.uber.org/zap"
)

var globalArgs struct {
	Encoding string `flag:"encoding,Character encoding of produced documents (default depends on document kind)"`
	MaxDepth int    `flag:"max-depth,default=64,Maximum nesting depth of values"`
	Verbose  bool   `flag:"v,Log codec activity to stderr"`
}

var encodeArgs struct {
	Method   string `flag:"method,Produce a methodCall of the named method"`
	Response bool   `flag:"response,Produce a methodResponse"`
}

var decodeArgs struct {
	Format string `flag:"format,default=yaml,Output format (yaml, pretty, cbor)"`
}

func main() {
	root := &command.C{
		Name:     "xmlrpc",
		Usage:    "command args...",
		Help:     "Convert between XML-RPC documents and YAML.",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "encode",
				Usage: "encode [file]",
				Help: `Encode a YAML document as XML-RPC.

The input is read from file, or from stdin if file is absent or "-".

Integers, floats and strings become <int>, <double> and <string>.
Mappings become <struct>, in key order. A top-level sequence is an
argument list, with one <param> per element. Nested sequences
become multi-valued <value> elements. An empty document encodes no
parameters.

By default the output is a <params> document. Use --method or
--response to produce a <methodCall> or <methodResponse> instead.`,
				SetFlags: command.Flags(flax.MustBind, &encodeArgs),
				Run:      runEncode,
			},
			{
				Name:  "decode",
				Usage: "decode [file]",
				Help: `Decode an XML-RPC document.

The input is read from file, or from stdin if file is absent or "-".

<params> and <methodResponse> documents print their decoded value.
<methodCall> documents print the method name and argument list.`,
				SetFlags: command.Flags(flax.MustBind, &decodeArgs),
				Run:      runDecode,
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}

// codec returns the Codec configured by the global flags.
func codec() (xmlrpc.Codec, error) {
	ret := xmlrpc.Codec{
		Encoding: globalArgs.Encoding,
		MaxDepth: globalArgs.MaxDepth,
	}
	if globalArgs.Verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return xmlrpc.Codec{}, fmt.Errorf("creating logger: %w", err)
		}
		ret.Logger = log
	}
	return ret, nil
}

func runEncode(env *command.Env) error {
	if encodeArgs.Method != "" && encodeArgs.Response {
		return env.Usagef("--method and --response are mutually exclusive")
	}
	in, err := readInput(env.Args)
	if err != nil {
		return err
	}
	c, err := codec()
	if err != nil {
		return err
	}
	if c.Logger != nil {
		defer c.Logger.Sync()
	}

	var kind docKind
	switch {
	case encodeArgs.Method != "":
		kind = callDoc
	case encodeArgs.Response:
		kind = responseDoc
	}
	out, err := encode(c, kind, encodeArgs.Method, in)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runDecode(env *command.Env) error {
	f, ok := formats[decodeArgs.Format]
	if !ok {
		return env.Usagef("unknown output format %q", decodeArgs.Format)
	}
	in, err := readInput(env.Args)
	if err != nil {
		return err
	}
	c, err := codec()
	if err != nil {
		return err
	}
	if c.Logger != nil {
		defer c.Logger.Sync()
	}

	res, err := decode(c, in)
	if err != nil {
		return err
	}
	return f(os.Stdout, res)
}

// readInput returns the contents of the single file named in args,
// or of stdin if args is empty or "-".
func readInput(args []string) ([]byte, error) {
	switch len(args) {
	case 0:
		return io.ReadAll(os.Stdin)
	case 1:
		if args[0] == "-" {
			return io.ReadAll(os.Stdin)
		}
		bs, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return bs, nil
	default:
		return nil, fmt.Errorf("too many arguments, want at most one input file")
	}
}

type docKind int

const (
	paramsDoc docKind = iota
	callDoc
	responseDoc
)

// encode converts the YAML document in to an XML-RPC document of the
// given kind.
func encode(c xmlrpc.Codec, kind docKind, method string, in []byte) ([]byte, error) {
	v, err := fromYAML(in)
	if err != nil {
		return nil, err
	}
	switch kind {
	case callDoc:
		return c.EncodeCall(method, v)
	case responseDoc:
		return c.EncodeResponse(v)
	default:
		return c.EncodeParams(v)
	}
}

// decode decodes the XML-RPC document in, dispatching on its root
// element.
func decode(c xmlrpc.Codec, in []byte) (result, error) {
	root, err := wire.Parse(in)
	if err != nil {
		return result{}, err
	}
	if root.Tag == "methodCall" {
		call, err := c.DecodeCall(in)
		if err != nil {
			return result{}, err
		}
		return callResult(call), nil
	}
	v, err := c.DecodeParams(in)
	if err != nil {
		return result{}, err
	}
	return result{Value: v}, nil
}
