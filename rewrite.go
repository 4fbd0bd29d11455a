package gproject

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/gproject/codec"
	"github.com/signadot/gproject/ir"
)

// Edit assigns Value to Plug.
type Edit struct {
	Plug  *ir.Plug
	Value ir.Value
}

// SetPlugValues applies edits to the document.
//
// The literal of every edited plug is replaced by the encoding of its new
// value.  Replacements of all edits made so far are applied in one pass to
// the original text, so the modified text differs from the original only
// within the literals of edited plugs.  Plug values are updated once the
// new text is built; on error neither the text nor any plug is changed.
// The last edit of a plug wins.
func (d *Document) SetPlugValues(edits ...Edit) error {
	lits := maps.Clone(d.lits)
	for _, e := range edits {
		p := e.Plug
		if p == nil {
			return fmt.Errorf("%w: nil plug", ErrRewrite)
		}
		if !d.owns(p) {
			return fmt.Errorf("%w: %s is not a plug of the document", ErrRewrite, p)
		}
		if !p.Span.Valid() {
			return fmt.Errorf("%w: %s", ErrNoLiteral, p)
		}
		if p.Span.End > len(d.org) || string(d.org[p.Span.Off:p.Span.End]) != p.Literal {
			return fmt.Errorf("%w: literal of %s is not in the document", ErrRewrite, p)
		}
		lit, err := codec.EncodeDeclared(p.Decl, e.Value, p.Literal)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if d.log.IsDebug() {
			old, _ := codec.EncodeDeclared(p.Decl, p.Value, p.Literal)
			idp, _ := ir.PlugToIDPath(p)
			d.log.Debug("set plug value", "plug", idp, "old", old, "new", lit)
		}
		lits[p] = lit
	}
	mod, err := splice(d.org, lits)
	if err != nil {
		return err
	}
	d.lits = lits
	d.mod = mod
	for _, e := range edits {
		e.Plug.Value = e.Value
	}
	return nil
}

func (d *Document) owns(p *ir.Plug) bool {
	n := p.Parent
	for n != nil && n.Parent != nil {
		n = n.Parent
	}
	return n != nil && n == d.g.Root()
}

// splice replaces the literal span of each plug of lits in org.
func splice(org []byte, lits map[*ir.Plug]string) ([]byte, error) {
	plugs := slices.SortedFunc(maps.Keys(lits), func(a, b *ir.Plug) int {
		return a.Span.Off - b.Span.Off
	})
	buf := bytes.NewBuffer(make([]byte, 0, len(org)))
	off := 0
	for _, p := range plugs {
		if p.Span.Off < off {
			return nil, fmt.Errorf("%w: literal of %s overlaps another edit", ErrRewrite, p)
		}
		buf.Write(org[off:p.Span.Off])
		buf.WriteString(lits[p])
		off = p.Span.End
	}
	buf.Write(org[off:])
	return buf.Bytes(), nil
}

// Literal returns the current literal text of p: its replacement if p was
// edited, its original literal otherwise.
func (d *Document) Literal(p *ir.Plug) string {
	if lit, ok := d.lits[p]; ok {
		return lit
	}
	return p.Literal
}
