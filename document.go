package gproject

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/signadot/gproject/ir"
	"github.com/signadot/gproject/parse"
)

type config struct {
	logger    hclog.Logger
	parseOpts []parse.ParseOption
}

type Option func(*config)

// WithLogger sets the logger receiving diagnostics of parsing and edits.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) {
		c.logger = l
		c.parseOpts = append(c.parseOpts, parse.WithLogger(l))
	}
}

// WithParseOptions passes opts to [parse.Parse].
func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(c *config) { c.parseOpts = append(c.parseOpts, opts...) }
}

// Document is a parsed scene file together with its original and
// modified text.
type Document struct {
	g    *ir.Graph
	org  []byte
	mod  []byte
	lits map[*ir.Plug]string
	log  hclog.Logger
}

// Parse parses the scene file text d.  d is retained and must not be
// modified.
func Parse(d []byte, opts ...Option) (*Document, error) {
	cfg := &config{}
	for _, f := range opts {
		f(cfg)
	}
	g, err := parse.Parse(d, cfg.parseOpts...)
	if err != nil {
		return nil, err
	}
	log := cfg.logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Document{
		g:    g,
		org:  d,
		lits: map[*ir.Plug]string{},
		log:  log,
	}, nil
}

// ParseFile reads and parses the scene file at path.
func ParseFile(path string, opts ...Option) (*Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func (d *Document) Graph() *ir.Graph {
	return d.g
}

func (d *Document) Root() *ir.Node {
	return d.g.Root()
}

func (d *Document) DocFormatRev() (int, error) {
	return d.g.DocFormatRev()
}

// Nodes iterates over all nodes but the root.
func (d *Document) Nodes() iter.Seq[*ir.Node] {
	return d.g.Nodes()
}

func (d *Document) Plugs() iter.Seq[*ir.Plug] {
	return d.g.Plugs()
}

func (d *Document) ImplicitNodes() []*ir.Node {
	return d.g.ImplicitNodes()
}

func (d *Document) Object(id int) (ir.Object, bool) {
	return d.g.Object(id)
}

func (d *Document) PathToNode(path string) (*ir.Node, error) {
	return d.g.PathToNode(path)
}

func (d *Document) PathToPlug(path string) (*ir.Plug, error) {
	return d.g.PathToPlug(path)
}

func (d *Document) NodeToIDPath(n *ir.Node) (string, error) {
	return ir.NodeToIDPath(n)
}

// HasChanged reports whether the modified text differs from the original.
func (d *Document) HasChanged() bool {
	return d.mod != nil && !bytes.Equal(d.mod, d.org)
}

func (d *Document) OriginalContent() []byte {
	return bytes.Clone(d.org)
}

// ModifiedContent returns the text with all edits applied, the original
// text if there were none.
func (d *Document) ModifiedContent() []byte {
	if d.mod == nil {
		return bytes.Clone(d.org)
	}
	return bytes.Clone(d.mod)
}

func (d *Document) content() []byte {
	if d.mod == nil {
		return d.org
	}
	return d.mod
}

// Write writes the modified text to path.
func (d *Document) Write(path string) error {
	return os.WriteFile(path, d.content(), 0o644)
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.content())
	return int64(n), err
}

// Equal reports whether d and o have the same modified text.
func (d *Document) Equal(o *Document) bool {
	return bytes.Equal(d.content(), o.content())
}
