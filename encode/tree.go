package encode

import (
	"github.com/signadot/gproject/ir"
)

// Tree is the structured form of a node subtree used by the YAML and JSON
// formats.
type Tree struct {
	Name     string     `json:"name" yaml:"name"`
	Type     string     `json:"type" yaml:"type"`
	ID       int        `json:"id" yaml:"id"`
	Path     string     `json:"path,omitempty" yaml:"path,omitempty"`
	Display  string     `json:"display,omitempty" yaml:"display,omitempty"`
	Implicit bool       `json:"implicit,omitempty" yaml:"implicit,omitempty"`
	Plugs    []PlugTree `json:"plugs,omitempty" yaml:"plugs,omitempty"`
	Children []*Tree    `json:"children,omitempty" yaml:"children,omitempty"`
}

type PlugTree struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Decl  string `json:"decl,omitempty" yaml:"decl,omitempty"`
	Kind  string `json:"kind" yaml:"kind"`
	Value any    `json:"value" yaml:"value"`
	Input string `json:"input,omitempty" yaml:"input,omitempty"`
}

// MakeTree builds the tree of n down to depth levels, 0 for all of them.
func MakeTree(n *ir.Node, depth int, plugs bool) *Tree {
	t := &Tree{
		Name:     n.Name(),
		Type:     n.Type,
		ID:       n.ID,
		Implicit: n.IsImplicit(),
	}
	if n.Indexed {
		t.Name = n.Segment()
	}
	if p, err := n.Path(); err == nil {
		t.Path = p
	}
	if d := n.DisplayName(); d != n.Name() {
		t.Display = d
	}
	if plugs {
		for _, p := range n.Plugs() {
			pt := PlugTree{
				Name:  p.Name,
				Type:  p.Type,
				Decl:  p.Decl,
				Kind:  p.Value.Kind.String(),
				Value: p.Value.Any(),
			}
			if p.Input != nil {
				pt.Input, _ = p.Input.Path()
			}
			t.Plugs = append(t.Plugs, pt)
		}
	}
	if depth == 1 {
		return t
	}
	for _, c := range n.Children() {
		t.Children = append(t.Children, MakeTree(c, max(depth-1, 0), plugs))
	}
	return t
}
