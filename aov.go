package gproject

import (
	"fmt"

	"github.com/signadot/gproject/ir"
)

// AOV returns the render output of layer in render pass whose display
// name is label.  Render outputs are usually named by their PlugName plug
// rather than by their node name, so a plain path does not reach them.
func (d *Document) AOV(pass, layer, label string) (*ir.Node, error) {
	rl, err := d.g.PathToNode(ir.JoinPath(ir.EscapeSegment(pass), ir.EscapeSegment(layer)))
	if err != nil {
		return nil, err
	}
	var found []*ir.Node
	for _, c := range rl.Children() {
		if c.DisplayName() == label {
			found = append(found, c)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: no output %q in %q %q", ir.ErrPath, label, pass, layer)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%w: %d outputs %q in %q %q", ir.ErrPath, len(found), label, pass, layer)
	}
}
