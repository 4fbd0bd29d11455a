package parse

import (
	"strings"

	"github.com/signadot/gproject/ir"
)

type implicitKey struct {
	start *ir.Node
	path  string
}

// implicit walks segs from start, creating the nodes which do not exist.
// Results are memoized by start node and path so far.
func (b *builder) implicit(start *ir.Node, segs []string) *ir.Node {
	if n := b.memo[implicitKey{start, strings.Join(segs, "|")}]; n != nil {
		return n
	}
	cur := start
	for i, seg := range segs {
		k := implicitKey{start, strings.Join(segs[:i+1], "|")}
		if n := b.memo[k]; n != nil {
			cur = n
			continue
		}
		n := cur.Child(seg)
		if n == nil {
			name, indexed := ir.SegmentName(seg)
			// cannot fail: cur has no child seg.
			n, _ = b.g.NewNode(ir.ImplicitID, name, indexed, ir.UnresolvedType, cur)
			b.g.AddImplicit(n)
			if b.log.IsTrace() {
				b.log.Trace("implicit node", "path", pathOf(n))
			}
		}
		b.memo[k] = n
		cur = n
	}
	return cur
}
