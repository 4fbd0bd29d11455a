package ir

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// PathToNode resolves an absolute or id anchored path.
func (g *Graph) PathToNode(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	var cur *Node
	if p.Absolute {
		cur = g.root
		if cur == nil {
			return nil, fmt.Errorf("%w: no root", ErrPath)
		}
	} else {
		o, ok := g.objs[p.Anchor]
		if !ok {
			return nil, fmt.Errorf("%w: no object $%d", ErrPath, p.Anchor)
		}
		cur, ok = o.(*Node)
		if !ok {
			return nil, fmt.Errorf("%w: $%d is not a node", ErrPath, p.Anchor)
		}
	}
	for _, seg := range p.Segments {
		c := cur.childIdx[seg]
		if c == nil {
			return nil, fmt.Errorf("%w: no child %q under %s resolving %q", ErrPath, seg, cur, path)
		}
		cur = c
	}
	return cur, nil
}

// PathToPlug resolves node path.name, where an empty node path denotes the
// root.
func (g *Graph) PathToPlug(path string) (*Plug, error) {
	node, attr, ok := SplitAttr(path)
	if !ok || attr == "" {
		return nil, fmt.Errorf("%w: %q has no plug name", ErrPath, path)
	}
	n := g.root
	if node != "" {
		var err error
		n, err = g.PathToNode(node)
		if err != nil {
			return nil, err
		}
	} else if n == nil {
		return nil, fmt.Errorf("%w: no root", ErrPath)
	}
	return n.GetPlug(UnescapeSegment(attr))
}

// NodeToIDPath renders n relative to its closest ancestor with an object
// id: $id|seg|seg.
func NodeToIDPath(n *Node) (string, error) {
	var segs []string
	cur := n
	for cur.ID == ImplicitID {
		segs = append(segs, cur.Segment())
		cur = cur.Parent
		if cur == nil {
			return "", fmt.Errorf("%w: %s has no ancestor with an id", ErrPath, n)
		}
	}
	slices.Reverse(segs)
	b := &strings.Builder{}
	b.WriteString("$" + strconv.Itoa(cur.ID))
	for _, seg := range segs {
		b.WriteByte(PathSep)
		b.WriteString(seg)
	}
	return b.String(), nil
}

// PlugToIDPath renders p as the id path of its node followed by .name.
func PlugToIDPath(p *Plug) (string, error) {
	np, err := NodeToIDPath(p.Parent)
	if err != nil {
		return "", err
	}
	return np + string(AttrSep) + EscapeSegment(p.Name), nil
}
