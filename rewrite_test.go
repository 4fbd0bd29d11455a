package gproject

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/signadot/gproject/codec"
	"github.com/signadot/gproject/ir"
	"github.com/signadot/gproject/libdiff"
)

func TestSetPlugValue(t *testing.T) {
	doc := scene(t)
	org := string(doc.OriginalContent())
	p := mustPlug(t, doc, ".ColorMode")
	if err := doc.SetPlugValues(Edit{Plug: p, Value: ir.FromString("divide")}); err != nil {
		t.Fatal(err)
	}
	if !doc.HasChanged() || !p.Value.Equal(ir.FromString("divide")) {
		t.Fatalf("changed %v value %+v", doc.HasChanged(), p.Value)
	}
	mod := string(doc.ModifiedContent())
	want := strings.Replace(org, `"multiply"`, `"divide"`, 1)
	if diff := cmp.Diff(want, mod); diff != "" {
		t.Error(diff)
	}
	if string(doc.OriginalContent()) != org {
		t.Error("original content changed")
	}
	for _, s := range libdiff.Spans(org, mod) {
		if s.Off < p.Span.Off || s.Off+len(s.Removed) > p.Span.End {
			t.Errorf("change %+v outside of literal %+v", s, p.Span)
		}
	}
	rm, add := libdiff.Chars(org, mod)
	if len(rm) >= len("multiply") || len(add) >= len("divide") || len(rm)-len(add) != 2 {
		t.Errorf("removed %q added %q", rm, add)
	}
	if got := doc.Literal(p); got != `"divide"` {
		t.Errorf("literal %s", got)
	}
}

func TestSetPlugValuesBatches(t *testing.T) {
	doc := scene(t)
	org := string(doc.OriginalContent())
	gain := mustPlug(t, doc, "|Scene|Model.Gain")
	last := mustPlug(t, doc, ".LastFrame")
	comment := mustPlug(t, doc, "|Scene|Model.Comment")
	hset := mustPlug(t, doc, "|Scene|Model.HSet")
	sub := mustPlug(t, doc, "|RenderPass|Layer|Input|Sub.Value")
	ref := mustPlug(t, doc, "|Scene|foo.ReferenceFileName")
	batches := [][]Edit{
		{{gain, ir.FromReal(2)}, {last, ir.FromReal(250)}},
		{{gain, ir.FromReal(0.25)}, {comment, ir.FromString("say \"hi\"\n")}},
		{{hset, ir.FromLabels("Diffuse", "Shadows")}, {sub, ir.FromReal(-1)}},
		{{ref, ir.FromString("/other/file.abc")}},
	}
	for _, b := range batches {
		if err := doc.SetPlugValues(b...); err != nil {
			t.Fatal(err)
		}
	}
	want := org
	for _, r := range [][2]string{
		{`{min=0,max=16},1.5)`, `{min=0,max=16},0.25)`},
		{`set("$1.LastFrame",1000)`, `set("$1.LastFrame",250)`},
		{`"line one\010line \"two\""`, `"say \"hi\"\010"`},
		{`"Diffuse,-Reflection,-Refraction,Shadows"`, `"Diffuse,Shadows"`},
		{`Sub.Value",2)`, `Sub.Value",-1)`},
		{`"/path/to/file.abc"`, `"/other/file.abc"`},
	} {
		if !strings.Contains(want, r[0]) {
			t.Fatalf("%q not in the scene", r[0])
		}
		want = strings.Replace(want, r[0], r[1], 1)
	}
	if diff := cmp.Diff(want, string(doc.ModifiedContent())); diff != "" {
		t.Error(diff)
	}
	out, err := Parse(doc.ModifiedContent())
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []*ir.Plug{gain, last, comment, hset, sub, ref} {
		path, _ := p.Path()
		q := mustPlug(t, out, path)
		if !q.Value.Equal(p.Value) {
			t.Errorf("%s: reparsed %+v, edited %+v", path, q.Value, p.Value)
		}
	}
}

func TestSetPlugValuesUnchanged(t *testing.T) {
	doc := scene(t)
	gain := mustPlug(t, doc, "|Scene|Model.Gain")
	if err := doc.SetPlugValues(Edit{Plug: gain, Value: ir.FromReal(1.5)}); err != nil {
		t.Fatal(err)
	}
	if doc.HasChanged() {
		t.Error("same value changed the document")
	}
	if err := doc.SetPlugValues(Edit{Plug: gain, Value: ir.FromReal(3)}, Edit{Plug: gain, Value: ir.FromReal(1.5)}); err != nil {
		t.Fatal(err)
	}
	if doc.HasChanged() {
		t.Error("last edit does not win")
	}
}

func TestSetPlugValuesErrors(t *testing.T) {
	doc := scene(t)
	color := mustPlug(t, doc, ".ColorMode")
	gain := mustPlug(t, doc, "|Scene|Model.Gain")
	noLit := mustPlug(t, doc, "|RenderPass|Layer|Output|Input.Color")
	for _, tc := range []struct {
		name  string
		edits []Edit
		err   error
	}{
		{"no literal", []Edit{{color, ir.FromString("divide")}, {noLit, ir.FromReal(1)}}, ErrNoLiteral},
		{"nil plug", []Edit{{color, ir.FromString("divide")}, {}}, ErrRewrite},
		{"kind", []Edit{{color, ir.FromString("divide")}, {gain, ir.FromString("x")}}, codec.ErrEncode},
		{"not finite", []Edit{{gain, ir.FromReal(math.Inf(1))}}, codec.ErrEncode},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := doc.SetPlugValues(tc.edits...)
			if !errors.Is(err, tc.err) {
				t.Fatalf("got %v, want %v", err, tc.err)
			}
			if doc.HasChanged() || !color.Value.Equal(ir.FromString("multiply")) {
				t.Error("failed edit changed the document")
			}
		})
	}
	// same text, other document
	foreign := mustPlug(t, scene(t), ".ColorMode")
	if err := doc.SetPlugValues(Edit{Plug: foreign, Value: ir.FromString("x")}); !errors.Is(err, ErrRewrite) {
		t.Errorf("got %v", err)
	}
	if doc.HasChanged() || doc.Literal(color) != `"multiply"` {
		t.Error("foreign edit changed the document")
	}
	moved := *color
	moved.Literal = `"other"`
	if err := doc.SetPlugValues(Edit{Plug: &moved, Value: ir.FromString("x")}); !errors.Is(err, ErrRewrite) {
		t.Errorf("got %v", err)
	}
}

func TestSetPlugValuesLog(t *testing.T) {
	buf := &bytes.Buffer{}
	doc := scene(t, WithLogger(hclog.New(&hclog.LoggerOptions{Level: hclog.Debug, Output: buf})))
	buf.Reset()
	if err := doc.SetPlugValues(Edit{Plug: mustPlug(t, doc, "|Scene|Model.Gain"), Value: ir.FromReal(2)}); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, `set plug value: plug="$3.Gain" old=1.5 new=2`) {
		t.Errorf("got %q", out)
	}
}
