package parse

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/signadot/gproject/codec"
	"github.com/signadot/gproject/ir"
	"github.com/signadot/gproject/token"
)

func readScene(t *testing.T) []byte {
	t.Helper()
	d, err := os.ReadFile("../testdata/scene.gproject")
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func testLogger(buf *bytes.Buffer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Trace,
		Output: buf,
	})
}

func mustPlug(t *testing.T, g *ir.Graph, path string) *ir.Plug {
	t.Helper()
	p, err := g.PathToPlug(path)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParseScene(t *testing.T) {
	g, err := Parse(readScene(t))
	if err != nil {
		t.Fatal(err)
	}
	rev, err := g.DocFormatRev()
	if err != nil || rev != 19 {
		t.Errorf("doc format rev %d %v", rev, err)
	}
	root := g.Root()
	if root.Name() != "LUIDocument" || root.Type != "GADocument" || root.ID != 1 {
		t.Errorf("root %q %q %d", root.Name(), root.Type, root.ID)
	}
	if p := mustPlug(t, g, ".ColorMode"); !p.Value.Equal(ir.FromString("multiply")) {
		t.Errorf("ColorMode %+v", p.Value)
	}
	if p := mustPlug(t, g, ".LastFrame"); !p.Value.Equal(ir.FromReal(1000)) || p.Literal != "1000" {
		t.Errorf("LastFrame %+v %q", p.Value, p.Literal)
	}

	gain := mustPlug(t, g, "|Scene|Model.Gain")
	if gain.ID != 4 || gain.Type != "AttributePlug" || gain.Decl != "types.float" {
		t.Errorf("gain %d %s %s", gain.ID, gain.Type, gain.Decl)
	}
	if gain.Flag == nil || *gain.Flag != 4 {
		t.Errorf("gain flag %v", gain.Flag)
	}
	if !gain.Value.Equal(ir.FromReal(1.5)) {
		t.Errorf("gain %+v", gain.Value)
	}
	if diff := cmp.Diff(map[string]float64{"min": 0, "max": 16}, map[string]float64(gain.Params)); diff != "" {
		t.Errorf("params (-want +got):\n%s", diff)
	}
	if o, ok := g.Object(4); !ok || o != ir.Object(gain) {
		t.Errorf("object 4 is %v", o)
	}

	if p := mustPlug(t, g, "|Scene|Model.DoubleSided"); !p.Value.Equal(ir.FromBool(false)) {
		t.Errorf("DoubleSided %+v", p.Value)
	}
	if p := mustPlug(t, g, "|Scene|Model.HSet"); !p.Value.Equal(ir.FromLabels("Shadows", "-Refraction", "-Reflection", "Diffuse")) {
		t.Errorf("HSet %+v", p.Value)
	}
	files := mustPlug(t, g, "|Scene|Model.Files")
	if diff := cmp.Diff([]string{"$(SAMPLES)/sprite.1.png", "$(SAMPLES)/sprite.2.png"}, files.Value.Strings); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}
	if p := mustPlug(t, g, "|Scene|Model.Color"); !p.Value.Equal(ir.FromReals(1, 0.5, 0)) {
		t.Errorf("Color %+v", p.Value)
	}
	if p := mustPlug(t, g, "|Scene|Model.Transform"); !p.Value.Equal(ir.FromRaw(ir.IdentityTransform)) {
		t.Errorf("Transform %+v", p.Value)
	}
	if p := mustPlug(t, g, "|Scene|Model.Comment"); p.Value.String != "line one\nline \"two\"" {
		t.Errorf("Comment %q", p.Value.String)
	}
	if p := mustPlug(t, g, "|Scene|foo.ReferenceFileName"); p.Value.String != "/path/to/file.abc" {
		t.Errorf("ReferenceFileName %+v", p.Value)
	}

	out, err := g.PathToNode("|RenderPass|Layer|Output")
	if err != nil {
		t.Fatal(err)
	}
	if out.DisplayName() != "Beauty" {
		t.Errorf("display name %q", out.DisplayName())
	}
	idx, err := g.PathToNode("|RenderPass|Layer|[0]")
	if err != nil {
		t.Fatal(err)
	}
	if !idx.Indexed || idx.DisplayName() != "Albedo" {
		t.Errorf("indexed node %q", idx.DisplayName())
	}
}

func TestParseSpans(t *testing.T) {
	d := readScene(t)
	g, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	for p := range g.Plugs() {
		if !p.Span.Valid() {
			if p.Literal != "" {
				t.Errorf("%s: literal %q without span", p, p.Literal)
			}
			continue
		}
		if got := string(d[p.Span.Off:p.Span.End]); got != p.Literal {
			t.Errorf("%s: span holds %q, literal is %q", p, got, p.Literal)
		}
	}
}

func TestImplicitNodes(t *testing.T) {
	g, err := Parse(readScene(t))
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, n := range g.ImplicitNodes() {
		if n.ID != ir.ImplicitID || n.Type != ir.UnresolvedType {
			t.Errorf("%s: id %d type %s", n, n.ID, n.Type)
		}
		p, _ := n.Path()
		paths = append(paths, p)
	}
	want := []string{
		"|RenderPass|Layer|Input",
		"|RenderPass|Layer|Input|Sub",
		"|RenderPass|Layer|Output|Input",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("implicit nodes (-want +got):\n%s", diff)
	}
	sub, _ := g.PathToNode("|RenderPass|Layer|Input|Sub")
	if got, _ := ir.NodeToIDPath(sub); got != "$9|Input|Sub" {
		t.Errorf("id path %q", got)
	}
}

func TestImplicitMemo(t *testing.T) {
	d := `oid[1]=create("GADocument","","Doc")
oid[2]=create("Node","$1","N")
set("$2|A|B.x",1)
set("$2|A|B.y",2)
set("$2|A.z",3)
connect("$2|A|B.x","$2|A.z")
`
	g, err := Parse([]byte(d))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(g.ImplicitNodes()); n != 2 {
		t.Fatalf("got %d implicit nodes", n)
	}
	b := g.ImplicitNodes()[1]
	if b.Plug("x") == nil || b.Plug("y") == nil {
		t.Errorf("plugs of B: %v", b.Plugs())
	}
	if b.Plug("x").Input != g.ImplicitNodes()[0].Plug("z") {
		t.Errorf("connection through implicit nodes")
	}
}

func TestConnect(t *testing.T) {
	g, err := Parse(readScene(t))
	if err != nil {
		t.Fatal(err)
	}
	gain := mustPlug(t, g, "|Scene|Model.Gain")
	color := mustPlug(t, g, "|RenderPass|Layer|Output|Input.Color")
	if color.Input != gain {
		t.Errorf("color input %v", color.Input)
	}
	if len(gain.Outputs) != 1 || gain.Outputs[0] != color {
		t.Errorf("gain outputs %v", gain.Outputs)
	}
	ds := mustPlug(t, g, "|Scene|Model.DoubleSided")
	value := mustPlug(t, g, "|RenderPass|Layer|Input|Sub.Value")
	if value.Input != ds || len(ds.Outputs) != 1 {
		t.Errorf("value input %v outputs %v", value.Input, ds.Outputs)
	}
	out, _ := g.PathToNode("|RenderPass|Layer|Output")
	if out.Plug("Dep") != nil {
		t.Errorf("depend should not create plugs")
	}
}

func TestConnectShift(t *testing.T) {
	d := `oid[1]=create("GADocument","","Doc")
oid[2]=create("Node","$1","N")
oid[3]=create("Node","$1","M")
connect("$2|Out","$3.In")
`
	g, err := Parse([]byte(d))
	if err != nil {
		t.Fatal(err)
	}
	n, _ := g.PathToNode("$2")
	in := n.Plug("Out")
	if in == nil {
		t.Fatalf("plug Out not created on %s", n)
	}
	if in.Input == nil || in.Input.Name != "In" {
		t.Errorf("input %v", in.Input)
	}
}

func TestDiagnostics(t *testing.T) {
	buf := &bytes.Buffer{}
	d := string(readScene(t)) + "garbage line\nset(\"$3.Expr\",function() return 1 end)\n"
	if _, err := Parse([]byte(d), WithLogger(testLogger(buf))); err != nil {
		t.Fatal(err)
	}
	log := buf.String()
	for _, want := range []string{
		"unknown command",
		"cmd=select",
		"skipping document reference",
		"skipping expression node connection",
		"skipping unrecognized line",
		"unsupported literal",
		"create plug",
		"implicit node",
	} {
		if !strings.Contains(log, want) {
			t.Errorf("diagnostics lack %q:\n%s", want, log)
		}
	}
}

func TestRedefinition(t *testing.T) {
	d := `oid[1]=create("GADocument","","Doc")
oid[2]=create("Node","$1","N")
oid[3]=create("AttributePlug","$2","Mode",4,types.string,"multiply")
oid[4]=create("Node","$1","M")
connect("$4.In","$3")
connect("$4.In2","$2.Mode")
set("$2.Mode","divide")
`
	g, err := Parse([]byte(d))
	if err != nil {
		t.Fatal(err)
	}
	o, _ := g.Object(3)
	p := o.(*ir.Plug)
	if !p.Value.Equal(ir.FromString("divide")) || p.Literal != `"divide"` {
		t.Errorf("value %+v literal %q", p.Value, p.Literal)
	}
	if p.Type != "AttributePlug" || p.Flag == nil || p.Decl != "" {
		t.Errorf("type %s flag %v decl %q", p.Type, p.Flag, p.Decl)
	}
	n, _ := g.PathToNode("$2")
	if len(n.Plugs()) != 1 {
		t.Errorf("plugs %v", n.Plugs())
	}
	m, _ := g.PathToNode("$4")
	if m.Plug("In2").Input != p {
		t.Errorf("connection lost")
	}
	if m.Plug("In") != nil {
		t.Errorf("expression endpoint should be skipped")
	}
}

func TestAdoptImplicit(t *testing.T) {
	d := `oid[1]=create("GADocument","","Doc")
set("$1|Later.x",1)
oid[2]=create("Node","$1","Later")
set("$2.y",2)
`
	g, err := Parse([]byte(d))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(g.ImplicitNodes()); n != 0 {
		t.Errorf("%d implicit nodes", n)
	}
	n, _ := g.PathToNode("$2")
	if n.Type != "Node" || n.Plug("x") == nil || n.Plug("y") == nil {
		t.Errorf("adopted node %s %v", n.Type, n.Plugs())
	}
}

func TestParseErrors(t *testing.T) {
	const head = "oid[1]=create(\"GADocument\",\"\",\"Doc\")\noid[2]=create(\"Node\",\"$1\",\"N\")\n"
	for _, tc := range []struct {
		name string
		in   string
		errs []error
	}{
		{
			name: "double input",
			in:   head + "connect(\"$2.a\",\"$2.b\")\nconnect(\"$2.a\",\"$2.c\")\n",
			errs: []error{token.ErrGrammar, ErrContract},
		},
		{
			name: "unknown value type",
			in:   head + "oid[3]=create(\"AttributePlug\",\"$2\",\"x\",4,types.nope,1)\n",
			errs: []error{token.ErrGrammar, codec.ErrUnknownType},
		},
		{
			name: "bad declared literal",
			in:   head + "oid[3]=create(\"AttributePlug\",\"$2\",\"x\",4,types.float,abc)\n",
			errs: []error{token.ErrGrammar, codec.ErrLiteral},
		},
		{
			name: "bad create",
			in:   head + "oid[3]=create(\"Node\",$2,\"x\")\n",
			errs: []error{token.ErrGrammar},
		},
		{
			name: "create without oid",
			in:   head + "create(\"Node\",\"$2\",\"x\")\n",
			errs: []error{token.ErrGrammar},
		},
		{
			name: "missing object",
			in:   head + "set(\"$9.x\",1)\n",
			errs: []error{token.ErrGrammar, ErrNoObject},
		},
		{
			name: "set without attribute",
			in:   head + "set(\"$2|x\",1)\n",
			errs: []error{token.ErrGrammar},
		},
		{
			name: "duplicate child",
			in:   head + "oid[3]=create(\"Node\",\"$1\",\"N\")\n",
			errs: []error{token.ErrGrammar},
		},
		{
			name: "duplicate id",
			in:   head + "oid[2]=create(\"Node\",\"$1\",\"M\")\n",
			errs: []error{token.ErrGrammar},
		},
		{
			name: "no root",
			in:   "docformatrevision(19)\n",
			errs: []error{ErrNoRoot},
		},
		{
			name: "bad revision",
			in:   "docformatrevision(x)\n" + head,
			errs: []error{token.ErrGrammar, token.ErrNumber},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse([]byte(tc.in))
			if err == nil {
				t.Fatalf("expected error")
			}
			if g != nil {
				t.Errorf("partial graph returned")
			}
			for _, e := range tc.errs {
				if !errors.Is(err, e) {
					t.Errorf("%v is not %v", err, e)
				}
			}
		})
	}
}

func TestParseStrict(t *testing.T) {
	d := readScene(t)
	if _, err := Parse(d, ParseStrict(true)); !errors.Is(err, ErrStrict) {
		t.Errorf("expected strict error, got %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[ir.Object]*token.Pos{}
	g, err := Parse(readScene(t), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	gain := mustPlug(t, g, "|Scene|Model.Gain")
	if p := pos[gain]; p == nil || p.Line() != 7 {
		t.Errorf("position of gain %v", p)
	}
	if p := pos[g.Root()]; p == nil || p.Line() != 1 {
		t.Errorf("position of root %v", p)
	}
}
