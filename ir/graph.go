package ir

import (
	"fmt"
	"iter"
	"slices"
)

// Graph holds the nodes and plugs of one document, indexed by object id.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	objs         map[int]Object
	root         *Node
	implicit     []*Node
	docFormatRev *int
	epoch        uint64
}

func NewGraph() *Graph {
	return &Graph{objs: map[int]Object{}}
}

func (g *Graph) Root() *Node {
	return g.root
}

func (g *Graph) SetRoot(n *Node) {
	g.root = n
}

// NewNode creates a node under parent, or a parentless node if parent is
// nil.
func (g *Graph) NewNode(id int, name string, indexed bool, typ string, parent *Node) (*Node, error) {
	n := &Node{
		ID:      id,
		Type:    typ,
		Parent:  parent,
		Indexed: indexed,
		name:    name,
		g:       g,
	}
	if parent == nil {
		return n, nil
	}
	seg := n.Segment()
	if parent.childIdx[seg] != nil {
		return nil, fmt.Errorf("%w: child %q of %s", ErrDuplicate, name, parent)
	}
	if parent.childIdx == nil {
		parent.childIdx = map[string]*Node{}
	}
	parent.childIdx[seg] = n
	parent.children = append(parent.children, n)
	return n, nil
}

// Register records o under id.
func (g *Graph) Register(id int, o Object) error {
	if _, ok := g.objs[id]; ok {
		return fmt.Errorf("%w: object id %d", ErrDuplicate, id)
	}
	g.objs[id] = o
	return nil
}

// Object returns the node or plug with id.
func (g *Graph) Object(id int) (Object, bool) {
	o, ok := g.objs[id]
	return o, ok
}

// Len returns the number of objects with an id.
func (g *Graph) Len() int {
	return len(g.objs)
}

func (g *Graph) AddImplicit(n *Node) {
	g.implicit = append(g.implicit, n)
}

// ImplicitNodes returns the nodes created from path references, in
// creation order, omitting those later declared by a command of their own.
func (g *Graph) ImplicitNodes() []*Node {
	res := make([]*Node, 0, len(g.implicit))
	for _, n := range g.implicit {
		if n.IsImplicit() {
			res = append(res, n)
		}
	}
	return res
}

func (g *Graph) SetDocFormatRev(v int) {
	g.docFormatRev = &v
}

func (g *Graph) DocFormatRev() (int, error) {
	if g.docFormatRev == nil {
		return 0, ErrNoDocFormatRev
	}
	return *g.docFormatRev, nil
}

// Nodes iterates over all nodes but the root, parents before children.
// Each call starts a fresh traversal.
func (g *Graph) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if g.root == nil {
			return
		}
		stack := slices.Clone(g.root.children)
		slices.Reverse(stack)
		for len(stack) != 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		}
	}
}

// Plugs iterates over all plugs, those of the root first and then those
// of each node in the order of [Graph.Nodes].
func (g *Graph) Plugs() iter.Seq[*Plug] {
	return func(yield func(*Plug) bool) {
		if g.root == nil {
			return
		}
		for _, p := range g.root.plugs {
			if !yield(p) {
				return
			}
		}
		for n := range g.Nodes() {
			for _, p := range n.plugs {
				if !yield(p) {
					return
				}
			}
		}
	}
}
