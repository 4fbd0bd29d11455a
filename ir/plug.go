package ir

import "fmt"

// Span is a half open byte range of the original document.
type Span struct {
	Off, End int
}

func (s Span) Valid() bool {
	return s.End > s.Off
}

func (s Span) Len() int {
	return s.End - s.Off
}

// Plug is an attribute of a node.
type Plug struct {
	Name   string
	Type   string
	Parent *Node
	// ID is the object id of plugs created by their own create command, 0
	// otherwise.
	ID    int
	Value Value
	// Flag is the bit mask given to plugs created with a declared type.
	Flag *int
	// Decl is the declared value type, empty for inferred values.
	Decl   string
	Params map[string]float64
	// Literal is the text the value was decoded from and Span its
	// location in the original document.  Literal is empty for plugs
	// which were only created by connections.
	Literal string
	Span    Span

	Input   *Plug
	Outputs []*Plug
}

func (p *Plug) ObjectID() int {
	return p.ID
}

// Path returns node path.name, with an empty node path for plugs of the
// root.
func (p *Plug) Path() (string, error) {
	if p.Parent.IsRoot() {
		return string(AttrSep) + EscapeSegment(p.Name), nil
	}
	np, err := p.Parent.Path()
	if err != nil {
		return "", err
	}
	return np + string(AttrSep) + EscapeSegment(p.Name), nil
}

func (p *Plug) String() string {
	path, _ := p.Path()
	return fmt.Sprintf("plug %s", path)
}
