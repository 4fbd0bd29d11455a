package gproject

import (
	"errors"
	"testing"

	"github.com/signadot/gproject/ir"
)

func TestAOV(t *testing.T) {
	doc := scene(t)
	for label, want := range map[string]string{
		"Beauty": "|RenderPass|Layer|Output",
		"Albedo": "|RenderPass|Layer|[0]",
		"Input":  "|RenderPass|Layer|Input",
	} {
		n, err := doc.AOV("RenderPass", "Layer", label)
		if err != nil {
			t.Fatalf("%s: %v", label, err)
		}
		if p, _ := n.Path(); p != want {
			t.Errorf("%s: got %s, want %s", label, p, want)
		}
	}
	for _, args := range [][3]string{
		{"RenderPass", "Layer", "Output"},
		{"RenderPass", "Nope", "Beauty"},
		{"Nope", "Layer", "Beauty"},
	} {
		if _, err := doc.AOV(args[0], args[1], args[2]); !errors.Is(err, ir.ErrPath) {
			t.Errorf("%v: got %v", args, err)
		}
	}
}

func TestAOVAmbiguous(t *testing.T) {
	doc := scene(t)
	if err := doc.SetPlugValues(Edit{Plug: mustPlug(t, doc, "|RenderPass|Layer|[0].PlugName"), Value: ir.FromString("Beauty")}); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AOV("RenderPass", "Layer", "Beauty"); !errors.Is(err, ir.ErrPath) {
		t.Errorf("got %v", err)
	}
}
