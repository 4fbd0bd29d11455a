package ir

import (
	"errors"
	"slices"
	"testing"
)

// buildGraph returns
//
//	root $1
//	  Passes $2
//	    Render $3 (plug Mode)
//	      a.b (implicit)
//	    [0] $4
//	  Other $5
func buildGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	must := func(n *Node, err error) *Node {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		if n.ID != ImplicitID {
			if err := g.Register(n.ID, n); err != nil {
				t.Fatal(err)
			}
		}
		return n
	}
	root := must(g.NewNode(1, "Document", false, "LUIDocument", nil))
	g.SetRoot(root)
	passes := must(g.NewNode(2, "Passes", false, "Node", root))
	render := must(g.NewNode(3, "Render", false, "RenderPass", passes))
	imp := must(g.NewNode(ImplicitID, "a.b", false, UnresolvedType, render))
	g.AddImplicit(imp)
	must(g.NewNode(4, "0", true, "Node", passes))
	must(g.NewNode(5, "Other", false, "Node", root))
	if _, err := root.AddPlug("Version", "Plug"); err != nil {
		t.Fatal(err)
	}
	if _, err := render.AddPlug("Mode", "Plug"); err != nil {
		t.Fatal(err)
	}
	imp.EnsurePlug("Gain", "Plug")
	return g
}

func TestPaths(t *testing.T) {
	g := buildGraph(t)
	var paths []string
	for n := range g.Nodes() {
		p, err := n.Path()
		if err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
		got, err := g.PathToNode(p)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Errorf("PathToNode(%q) returned %s", p, got)
		}
	}
	want := []string{"|Passes", "|Passes|Render", `|Passes|Render|a\.b`, "|Passes|[0]", "|Other"}
	if !slices.Equal(paths, want) {
		t.Errorf("got %q, want %q", paths, want)
	}
	for p := range g.Plugs() {
		path, err := p.Path()
		if err != nil {
			t.Fatal(err)
		}
		got, err := g.PathToPlug(path)
		if err != nil {
			t.Fatal(err)
		}
		if got != p {
			t.Errorf("PathToPlug(%q) returned %s", path, got)
		}
	}
	if _, err := g.Root().Path(); !errors.Is(err, ErrPath) {
		t.Errorf("root path: expected path error, got %v", err)
	}
}

func TestPathErrors(t *testing.T) {
	g := buildGraph(t)
	if _, err := g.PathToNode("|Passes|Nope"); !errors.Is(err, ErrPath) {
		t.Errorf("expected path error, got %v", err)
	}
	if _, err := g.PathToNode("$9|x"); !errors.Is(err, ErrPath) {
		t.Errorf("expected path error, got %v", err)
	}
	if _, err := g.PathToPlug("|Passes|Render.Nope"); !errors.Is(err, ErrNoPlug) {
		t.Errorf("expected no plug error, got %v", err)
	}
	if _, err := g.PathToPlug("|Passes"); !errors.Is(err, ErrPath) {
		t.Errorf("expected path error, got %v", err)
	}
	p, err := g.PathToPlug(".Version")
	if err != nil || p.Parent != g.Root() {
		t.Errorf("root plug: %v %v", p, err)
	}
	passes, _ := g.PathToNode("$2")
	if _, err := passes.GetChild("Nope"); !errors.Is(err, ErrChild) {
		t.Errorf("expected child error, got %v", err)
	}
	if c, err := passes.GetChild("0"); err != nil || c.ID != 4 {
		t.Errorf("indexed child: %v %v", c, err)
	}
}

func TestIDPath(t *testing.T) {
	g := buildGraph(t)
	imp := g.ImplicitNodes()[0]
	got, err := NodeToIDPath(imp)
	if err != nil {
		t.Fatal(err)
	}
	if got != `$3|a\.b` {
		t.Errorf("got %q", got)
	}
	if n, err := g.PathToNode(got); err != nil || n != imp {
		t.Errorf("id path does not resolve: %v %v", n, err)
	}
	pp, err := PlugToIDPath(imp.Plug("Gain"))
	if err != nil || pp != `$3|a\.b.Gain` {
		t.Errorf("plug id path %q %v", pp, err)
	}
	if n, _ := g.PathToNode("$2"); n == nil {
		t.Fatal("no $2")
	} else if got, _ := NodeToIDPath(n); got != "$2" {
		t.Errorf("got %q", got)
	}
}

func TestRenameInvalidatesPaths(t *testing.T) {
	g := buildGraph(t)
	render, _ := g.PathToNode("$3")
	imp := render.Child(`a\.b`)
	before, _ := imp.Path()
	passes, _ := g.PathToNode("$2")
	if err := passes.SetName("AllPasses", false); err != nil {
		t.Fatal(err)
	}
	after, _ := imp.Path()
	if before == after || after != `|AllPasses|Render|a\.b` {
		t.Errorf("path after rename %q (before %q)", after, before)
	}
	if n, err := g.PathToNode("|AllPasses|Render"); err != nil || n != render {
		t.Errorf("renamed path does not resolve: %v", err)
	}
	if err := passes.SetName("Other", false); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate error, got %v", err)
	}
}

func TestNodesRestartable(t *testing.T) {
	g := buildGraph(t)
	count := func() int {
		c := 0
		for range g.Nodes() {
			c++
		}
		return c
	}
	if a, b := count(), count(); a != 5 || b != 5 {
		t.Errorf("counts %d %d", a, b)
	}
	for n := range g.Nodes() {
		if n.Name() != "Passes" {
			t.Errorf("first node %s", n)
		}
		break
	}
	var plugs []string
	for p := range g.Plugs() {
		plugs = append(plugs, p.Name)
	}
	if !slices.Equal(plugs, []string{"Version", "Mode", "Gain"}) {
		t.Errorf("plugs %q", plugs)
	}
}

func TestDisplayName(t *testing.T) {
	g := buildGraph(t)
	n, _ := g.PathToNode("$5")
	if n.DisplayName() != "Other" {
		t.Errorf("got %q", n.DisplayName())
	}
	p, _ := n.AddPlug(DisplayNamePlug, "Plug")
	p.Value = FromString("Beauty")
	if n.DisplayName() != "Beauty" {
		t.Errorf("got %q", n.DisplayName())
	}
	if _, err := n.AddPlug(DisplayNamePlug, "Plug"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate error, got %v", err)
	}
	if _, err := g.DocFormatRev(); !errors.Is(err, ErrNoDocFormatRev) {
		t.Errorf("expected missing revision, got %v", err)
	}
	g.SetDocFormatRev(19)
	if v, _ := g.DocFormatRev(); v != 19 {
		t.Errorf("got %d", v)
	}
}
