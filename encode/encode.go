package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/gproject/codec"
	"github.com/signadot/gproject/format"
	"github.com/signadot/gproject/ir"
)

type EncState struct {
	depth    int
	maxDepth int
	indent   int
	plugs    bool

	format format.Format

	Color func(ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat:
		d, err := yaml.MarshalWithOptions(MakeTree(node, es.maxDepth, es.plugs), yaml.Indent(es.indent))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", es.indent))
		return enc.Encode(MakeTree(node, es.maxDepth, es.plugs))
	case format.TextFormat:
		return encodeText(node, w, es)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func encodeText(n *ir.Node, w io.Writer, es *EncState) error {
	pad := strings.Repeat(" ", es.depth*es.indent)
	id := "~"
	if !n.IsImplicit() {
		id = "$" + strconv.Itoa(n.ID)
	}
	name := n.Name()
	if n.Indexed {
		name = n.Segment()
	}
	line := pad + es.color(NameColor, name) + " " + es.color(TypeColor, n.Type) + " "
	if n.IsImplicit() {
		line += es.color(ImplicitColor, id)
	} else {
		line += es.color(IDColor, id)
	}
	if d := n.DisplayName(); d != n.Name() {
		line += " " + es.color(SepColor, "#") + " " + es.color(ValueColor, strconv.Quote(d))
	}
	if err := writeString(w, line+"\n"); err != nil {
		return err
	}
	if es.plugs {
		for _, p := range n.Plugs() {
			if err := encodePlug(p, w, pad+strings.Repeat(" ", es.indent), es); err != nil {
				return err
			}
		}
	}
	if es.maxDepth > 0 && es.depth+1 >= es.maxDepth {
		return nil
	}
	es.depth++
	defer func() { es.depth-- }()
	for _, c := range n.Children() {
		if err := encodeText(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodePlug(p *ir.Plug, w io.Writer, pad string, es *EncState) error {
	v, err := codec.Encode(p.Value)
	if err != nil {
		v = "<" + err.Error() + ">"
	}
	line := pad + es.color(SepColor, string(ir.AttrSep)) + es.color(PlugColor, ir.EscapeSegment(p.Name))
	line += " " + es.color(SepColor, "=") + " " + es.color(ValueColor, v)
	if p.Decl != "" {
		line += " " + es.color(TypeColor, p.Decl)
	}
	if p.Input != nil {
		in, _ := p.Input.Path()
		line += " " + es.color(SepColor, "<-") + " " + es.color(PlugColor, in)
	}
	return writeString(w, line+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
