package ir

import (
	"fmt"
	"strconv"
)

const (
	// ImplicitID is the id of nodes which were not created by a command of
	// their own.
	ImplicitID = -1
	// UnresolvedType is the type of implicit nodes.
	UnresolvedType = "UNKNOWN"
	// DisplayNamePlug holds the user interface label of a node.
	DisplayNamePlug = "PlugName"
)

// Object is a [Node] or a [Plug].
type Object interface {
	ObjectID() int
	Path() (string, error)
}

type Node struct {
	ID     int
	Type   string
	Parent *Node
	// Indexed is set for positionally named nodes, whose path segment
	// renders as [N].
	Indexed bool

	name     string
	children []*Node
	childIdx map[string]*Node
	plugs    []*Plug
	plugIdx  map[string]*Plug

	g         *Graph
	path      string
	pathEpoch uint64
}

func (n *Node) ObjectID() int {
	return n.ID
}

func (n *Node) Name() string {
	return n.name
}

// Segment returns the escaped path segment naming n.
func (n *Node) Segment() string {
	return Segment(n.name, n.Indexed)
}

func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

func (n *Node) IsImplicit() bool {
	return n.ID == ImplicitID
}

// Index returns the position of a positionally named node.
func (n *Node) Index() (int, bool) {
	if !n.Indexed {
		return 0, false
	}
	i, err := strconv.Atoi(n.name)
	return i, err == nil
}

// SetName renames n, invalidating the cached paths of the graph.
func (n *Node) SetName(name string, indexed bool) error {
	seg := Segment(name, indexed)
	if p := n.Parent; p != nil {
		if o := p.childIdx[seg]; o != nil && o != n {
			return fmt.Errorf("%w: child %q of %s", ErrDuplicate, name, p)
		}
		delete(p.childIdx, n.Segment())
		p.childIdx[seg] = n
	}
	n.name = name
	n.Indexed = indexed
	if n.g != nil {
		n.g.epoch++
	}
	return nil
}

// Path returns the absolute path of n.  The root has no path.
func (n *Node) Path() (string, error) {
	if n.Parent == nil {
		return "", fmt.Errorf("%w: the root has no path", ErrPath)
	}
	if n.g != nil && n.path != "" && n.pathEpoch == n.g.epoch {
		return n.path, nil
	}
	var p string
	if n.Parent.Parent == nil {
		p = string(PathSep) + n.Segment()
	} else {
		pp, err := n.Parent.Path()
		if err != nil {
			return "", err
		}
		p = pp + string(PathSep) + n.Segment()
	}
	if n.g != nil {
		n.path = p
		n.pathEpoch = n.g.epoch
	}
	return p, nil
}

// DisplayName returns the string value of the PlugName plug, or the name
// of n.
func (n *Node) DisplayName() string {
	if p := n.plugIdx[DisplayNamePlug]; p != nil && p.Value.Kind == StringKind {
		return p.Value.String
	}
	return n.name
}

// Children returns the children of n in creation order.  The result must
// not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the child of n named by the path segment seg, or nil.
func (n *Node) Child(seg string) *Node {
	return n.childIdx[CanonSegment(seg)]
}

// GetChild returns the child of n called name.
func (n *Node) GetChild(name string) (*Node, error) {
	if c := n.childIdx[EscapeSegment(name)]; c != nil {
		return c, nil
	}
	if c := n.childIdx["["+name+"]"]; c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrChild, name, n)
}

// Plugs returns the plugs of n in creation order.  The result must not be
// modified.
func (n *Node) Plugs() []*Plug {
	return n.plugs
}

// Plug returns the plug of n called name, or nil.
func (n *Node) Plug(name string) *Plug {
	return n.plugIdx[name]
}

func (n *Node) GetPlug(name string) (*Plug, error) {
	if p := n.plugIdx[name]; p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrNoPlug, name, n)
}

// AddPlug creates a plug on n.
func (n *Node) AddPlug(name, typ string) (*Plug, error) {
	if _, ok := n.plugIdx[name]; ok {
		return nil, fmt.Errorf("%w: plug %q of %s", ErrDuplicate, name, n)
	}
	p := &Plug{Name: name, Type: typ, Parent: n}
	if n.plugIdx == nil {
		n.plugIdx = map[string]*Plug{}
	}
	n.plugIdx[name] = p
	n.plugs = append(n.plugs, p)
	return p, nil
}

// EnsurePlug returns the plug of n called name, creating it with type typ
// if it does not exist.
func (n *Node) EnsurePlug(name, typ string) *Plug {
	if p := n.plugIdx[name]; p != nil {
		return p
	}
	p, _ := n.AddPlug(name, typ)
	return p
}

func (n *Node) String() string {
	if n.Parent == nil {
		return fmt.Sprintf("root %s $%d", n.Type, n.ID)
	}
	p, _ := n.Path()
	if n.ID == ImplicitID {
		return p
	}
	return fmt.Sprintf("%s $%d", p, n.ID)
}
