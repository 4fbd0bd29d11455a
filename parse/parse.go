package parse

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/signadot/gproject/codec"
	"github.com/signadot/gproject/ir"
	"github.com/signadot/gproject/token"
)

const (
	// ArchReferenceType is the node type of references to external files.
	ArchReferenceType = "ArchReference"
	// ReferenceFileNamePlug holds the file path of an ArchReference.
	ReferenceFileNamePlug = "ReferenceFileName"

	plugType = "Plug"
	rootID   = 1
	docID    = 0
)

// Parse builds the object graph of the scene file d.
func Parse(d []byte, opts ...ParseOption) (*ir.Graph, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	b := &builder{
		g:    ir.NewGraph(),
		opts: pOpts,
		log:  GetLogger(opts...),
		memo: map[implicitKey]*ir.Node{},
	}
	sc := token.Scan(d)
	skipped := sc.Skipped
	for i := range sc.Commands {
		c := &sc.Commands[i]
		for len(skipped) != 0 && skipped[0].Line < c.Line {
			if err := b.skip(&skipped[0]); err != nil {
				return nil, err
			}
			skipped = skipped[1:]
		}
		if err := b.command(c); err != nil {
			return nil, err
		}
	}
	for i := range skipped {
		if err := b.skip(&skipped[i]); err != nil {
			return nil, err
		}
	}
	o, ok := b.g.Object(rootID)
	if !ok {
		return nil, fmt.Errorf("%w: no object $%d", ErrNoRoot, rootID)
	}
	root, ok := o.(*ir.Node)
	if !ok || !root.IsRoot() {
		return nil, fmt.Errorf("%w: $%d is not a parentless node", ErrNoRoot, rootID)
	}
	b.g.SetRoot(root)
	return b.g, nil
}

type builder struct {
	g    *ir.Graph
	opts *parseOpts
	log  hclog.Logger
	memo map[implicitKey]*ir.Node
}

func (b *builder) skip(s *token.Skipped) error {
	if b.opts.strict {
		return &token.GrammarError{Err: ErrStrict, Detail: "unrecognized line " + s.Text, Pos: s.Pos}
	}
	b.log.Warn("skipping unrecognized line", "line", s.Line+1, "text", s.Text)
	return nil
}

func (b *builder) command(c *token.Command) error {
	switch c.Name {
	case token.CmdDocFormatRevision:
		v, err := token.ParseDocFormatRevision(c)
		if err != nil {
			return err
		}
		b.g.SetDocFormatRev(v)
		return nil
	case token.CmdCreate, token.CmdCreateNotRef:
		return b.create(c)
	case token.CmdSet:
		return b.set(c)
	case token.CmdConnect:
		return b.link(c, true)
	case token.CmdDepend:
		return b.link(c, false)
	}
	if b.opts.strict {
		return c.Wrap(ErrStrict, "unknown command %q", c.Name)
	}
	b.log.Warn("unknown command", "line", c.Line+1, "cmd", c.Name)
	return nil
}

func (b *builder) create(c *token.Command) error {
	a, err := token.ParseCreate(c)
	if err != nil {
		return err
	}
	if !c.HasOID {
		return c.Errorf("%s of %q without object id", c.Name, a.Name)
	}
	var parent *ir.Node
	if a.Parent != "" {
		ref, err := ir.ParseRef(token.Unescape(a.Parent), false)
		if err != nil {
			return c.Wrap(err, "parent of %q", a.Name)
		}
		parent, err = b.resolve(c, ref.ID, ref.Segments)
		if err != nil {
			return err
		}
	}
	if codec.PlugClasses[a.Type] {
		return b.createPlug(c, a, parent)
	}
	return b.createNode(c, a, parent)
}

func (b *builder) createPlug(c *token.Command, a *token.CreateArgs, parent *ir.Node) error {
	if parent == nil {
		return c.Errorf("plug %q without parent", a.Name)
	}
	if a.Indexed {
		return c.Errorf("plug named by index %s", a.Name)
	}
	rest, err := token.ParsePlugRest(c, a)
	if err != nil {
		return err
	}
	v, params, err := codec.Decode(rest.Type, rest.Value, rest.Param)
	if err != nil {
		return c.Wrap(err, "plug %q", a.Name)
	}
	p := parent.EnsurePlug(a.Name, a.Type)
	p.Type = a.Type
	p.Flag = &rest.Flag
	p.Decl = rest.Type
	p.Params = params
	p.Value = v
	p.Literal = rest.Value
	p.Span = ir.Span{Off: c.Off + rest.ValueOff, End: c.Off + rest.ValueOff + len(rest.Value)}
	if err := b.register(c, p); err != nil {
		return err
	}
	p.ID = c.OID
	if b.log.IsDebug() {
		b.log.Debug("create plug", "id", c.OID, "path", pathOf(p), "type", rest.Type, "value", rest.Value)
	}
	return nil
}

func (b *builder) createNode(c *token.Command, a *token.CreateArgs, parent *ir.Node) error {
	var n *ir.Node
	if parent != nil {
		if ex := parent.Child(ir.Segment(a.Name, a.Indexed)); ex != nil {
			if !ex.IsImplicit() {
				return c.Errorf("duplicate child %q of %s", a.Name, parent)
			}
			ex.ID = c.OID
			ex.Type = a.Type
			n = ex
		}
	}
	if n == nil {
		var err error
		n, err = b.g.NewNode(c.OID, a.Name, a.Indexed, a.Type, parent)
		if err != nil {
			return c.Wrap(err, "")
		}
	}
	if err := b.register(c, n); err != nil {
		return err
	}
	if a.Type == ArchReferenceType {
		if err := b.archReference(c, a, n); err != nil {
			return err
		}
	}
	if b.log.IsDebug() {
		b.log.Debug("create node", "id", c.OID, "type", a.Type, "path", pathOf(n))
	}
	return nil
}

func (b *builder) archReference(c *token.Command, a *token.CreateArgs, n *ir.Node) error {
	rr, err := token.ParseRefRest(c, a)
	if err != nil {
		return err
	}
	p := n.EnsurePlug(ReferenceFileNamePlug, plugType)
	p.Value = ir.FromString(token.Unescape(rr.Path))
	p.Decl = "types.string"
	p.Literal = c.Args[rr.PathOff:rr.PathEnd]
	p.Span = ir.Span{Off: c.Off + rr.PathOff, End: c.Off + rr.PathEnd}
	return nil
}

func (b *builder) set(c *token.Command) error {
	sa, err := token.ParseSet(c)
	if err != nil {
		return err
	}
	ref, err := ir.ParseRef(token.Unescape(sa.Ref), true)
	if err != nil {
		return c.Wrap(err, "set target")
	}
	if !ref.HasAttr {
		return c.Errorf("set target %q has no attribute", sa.Ref)
	}
	n, err := b.resolve(c, ref.ID, ref.Segments)
	if err != nil {
		return err
	}
	v, ok := codec.Infer(sa.Value)
	p := n.EnsurePlug(ref.Attr, plugType)
	if !ok {
		b.log.Warn("unsupported literal", "line", c.Line+1, "literal", sa.Value, "path", pathOf(p))
	}
	p.Value = v
	p.Decl = ""
	p.Params = nil
	p.Literal = sa.Value
	p.Span = ir.Span{Off: c.Off + sa.ValueOff, End: c.Off + sa.ValueOff + len(sa.Value)}
	if c.HasOID {
		if err := b.register(c, p); err != nil {
			return err
		}
		p.ID = c.OID
	} else {
		b.track(c, p)
	}
	if b.log.IsDebug() {
		b.log.Debug("set", "path", pathOf(p), "value", sa.Value)
	}
	return nil
}

func (b *builder) link(c *token.Command, connect bool) error {
	la, err := token.ParseLink(c)
	if err != nil {
		return err
	}
	in, err := ir.ParseRef(token.Unescape(la.In), true)
	if err != nil {
		return c.Wrap(err, "input")
	}
	out, err := ir.ParseRef(token.Unescape(la.Out), true)
	if err != nil {
		return c.Wrap(err, "output")
	}
	for _, r := range []*ir.Ref{in, out} {
		if r.ID != docID {
			continue
		}
		if _, ok := b.g.Object(docID); !ok {
			b.log.Warn("skipping document reference", "line", c.Line+1, "cmd", c.Name, "ref", r.String())
			return nil
		}
	}
	inN, inAttr, inOK, err := b.endpoint(c, in)
	if err != nil {
		return err
	}
	outN, outAttr, outOK, err := b.endpoint(c, out)
	if err != nil {
		return err
	}
	if !inOK || !outOK {
		b.log.Warn("skipping expression node connection", "line", c.Line+1, "cmd", c.Name, "in", la.In, "out", la.Out)
		return nil
	}
	if !connect {
		if b.log.IsDebug() {
			b.log.Debug("depend", "in", pathOf(inN), "out", pathOf(outN))
		}
		return nil
	}
	inP := inN.EnsurePlug(inAttr, plugType)
	outP := outN.EnsurePlug(outAttr, plugType)
	if inP.Input != nil {
		return c.Wrap(ErrContract, "input of %s already connected to %s", inP, inP.Input)
	}
	inP.Input = outP
	outP.Outputs = append(outP.Outputs, inP)
	if b.log.IsDebug() {
		b.log.Debug("connect", "in", pathOf(inP), "out", pathOf(outP))
	}
	return nil
}

// endpoint resolves one side of a connection to a node and plug name.
// A reference with neither path nor attribute denotes an expression node,
// reported with ok false.
func (b *builder) endpoint(c *token.Command, r *ir.Ref) (n *ir.Node, attr string, ok bool, err error) {
	if !r.HasAttr && len(r.Segments) == 0 {
		return nil, "", false, nil
	}
	n, err = b.resolve(c, r.ID, r.Segments)
	if err != nil {
		return nil, "", false, err
	}
	if r.HasAttr {
		return n, r.Attr, true, nil
	}
	if n.Parent == nil {
		return nil, "", false, c.Errorf("%s names a root as plug", r)
	}
	return n.Parent, n.Name(), true, nil
}

func (b *builder) resolve(c *token.Command, id int, segs []string) (*ir.Node, error) {
	o, ok := b.g.Object(id)
	if !ok {
		return nil, c.Wrap(ErrNoObject, "$%d", id)
	}
	n, ok := o.(*ir.Node)
	if !ok {
		return nil, c.Wrap(ErrNoObject, "$%d is a plug, not a node", id)
	}
	if len(segs) == 0 {
		return n, nil
	}
	return b.implicit(n, segs), nil
}

func (b *builder) register(c *token.Command, o ir.Object) error {
	if prev, ok := b.g.Object(c.OID); ok && prev != o {
		return c.Errorf("object id %d already used", c.OID)
	} else if !ok {
		if err := b.g.Register(c.OID, o); err != nil {
			return c.Wrap(err, "")
		}
	}
	b.track(c, o)
	return nil
}

func (b *builder) track(c *token.Command, o ir.Object) {
	if b.opts.positions != nil {
		b.opts.positions[o] = c.Pos
	}
}

func pathOf(o ir.Object) string {
	if n, ok := o.(*ir.Node); ok && n.IsRoot() {
		return "|"
	}
	p, err := o.Path()
	if err != nil {
		return err.Error()
	}
	return p
}
