package gproject

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/signadot/gproject/ir"
)

// Validate checks the graph: every node and plug path resolves back to
// its object, sibling names and plug names are unique, input and output
// links agree, and no plug reaches itself through its inputs.  All
// violations are reported.
func (d *Document) Validate() error {
	var res *multierror.Error
	check := func(n *ir.Node) {
		segs := map[string]bool{}
		for _, c := range n.Children() {
			if segs[c.Segment()] {
				res = multierror.Append(res, fmt.Errorf("%w: duplicate child %q of %s", ErrInvalid, c.Name(), n))
			}
			segs[c.Segment()] = true
		}
		names := map[string]bool{}
		for _, p := range n.Plugs() {
			if names[p.Name] {
				res = multierror.Append(res, fmt.Errorf("%w: duplicate plug %q of %s", ErrInvalid, p.Name, n))
			}
			names[p.Name] = true
		}
	}
	if root := d.g.Root(); root != nil {
		check(root)
	}
	for n := range d.g.Nodes() {
		check(n)
		p, err := n.Path()
		if err != nil {
			res = multierror.Append(res, err)
			continue
		}
		if m, err := d.g.PathToNode(p); err != nil {
			res = multierror.Append(res, err)
		} else if m != n {
			res = multierror.Append(res, fmt.Errorf("%w: %s resolves to %s", ErrInvalid, p, m))
		}
	}
	state := map[*ir.Plug]int{}
	for p := range d.g.Plugs() {
		path, err := p.Path()
		if err != nil {
			res = multierror.Append(res, err)
		} else if q, err := d.g.PathToPlug(path); err != nil {
			res = multierror.Append(res, err)
		} else if q != p {
			res = multierror.Append(res, fmt.Errorf("%w: %s resolves to %s", ErrInvalid, path, q))
		}
		if err := checkLinks(p); err != nil {
			res = multierror.Append(res, err)
		}
		if err := checkCycle(p, state); err != nil {
			res = multierror.Append(res, err)
		}
	}
	return res.ErrorOrNil()
}

func checkLinks(p *ir.Plug) error {
	if in := p.Input; in != nil {
		n := 0
		for _, o := range in.Outputs {
			if o == p {
				n++
			}
		}
		if n != 1 {
			return fmt.Errorf("%w: %s is listed %d times in the outputs of its input %s", ErrInvalid, p, n, in)
		}
	}
	for _, o := range p.Outputs {
		if o.Input != p {
			return fmt.Errorf("%w: output %s of %s has input %v", ErrInvalid, o, p, o.Input)
		}
	}
	return nil
}

const (
	unvisited = iota
	visiting
	visited
)

// checkCycle follows the inputs of p.  Plugs of a chain already checked
// are not walked again.
func checkCycle(p *ir.Plug, state map[*ir.Plug]int) error {
	var chain []*ir.Plug
	cur := p
	for cur != nil && state[cur] == unvisited {
		state[cur] = visiting
		chain = append(chain, cur)
		cur = cur.Input
	}
	var err error
	if cur != nil && state[cur] == visiting {
		err = fmt.Errorf("%w: through %s", ErrCycle, cur)
	}
	for _, c := range chain {
		state[c] = visited
	}
	return err
}
