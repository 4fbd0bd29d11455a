// Package query selects scene nodes with boolean expressions.
//
// Expressions use the expr language (github.com/expr-lang/expr) over the
// fields of [Env], for example
//
//	type == "LayerOut" && display == "Beauty"
//	plugs.Gain > 1 && !implicit
//	hasLabel(plugs.HSet, "Shadows")
//	truthy(plugs.DoubleSided) || truthy(plugs.Files)
package query

import (
	"fmt"
	"iter"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/gproject/ir"
)

// Env is the environment of an expression evaluated on a node.
type Env struct {
	ID       int            `expr:"id"`
	Name     string         `expr:"name"`
	Type     string         `expr:"type"`
	Path     string         `expr:"path"`
	Display  string         `expr:"display"`
	Implicit bool           `expr:"implicit"`
	Depth    int            `expr:"depth"`
	Plugs    map[string]any `expr:"plugs"`
}

func NewEnv(n *ir.Node) Env {
	env := Env{
		ID:       n.ID,
		Name:     n.Name(),
		Type:     n.Type,
		Display:  n.DisplayName(),
		Implicit: n.IsImplicit(),
		Plugs:    map[string]any{},
	}
	env.Path, _ = n.Path()
	for p := n.Parent; p != nil; p = p.Parent {
		env.Depth++
	}
	for _, p := range n.Plugs() {
		env.Plugs[p.Name] = p.Value.Any()
	}
	return env
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("hasLabel", func(params ...any) (any, error) {
			ls, _ := params[0].([]string)
			return slices.Contains(ls, params[1].(string)), nil
		},
			new(func(any, string) bool)),
		expr.Function("truthy", func(params ...any) (any, error) {
			v, err := ir.FromAny(params[0], ir.NullKind)
			if err != nil {
				return nil, err
			}
			return ir.Truth(v), nil
		},
			new(func(any) bool)),
	}
}

type Query struct {
	src  string
	prog *vm.Program
}

// Compile compiles the boolean expression src.
func Compile(src string) (*Query, error) {
	opts := append(exprOpts(), expr.Env(Env{}), expr.AsBool())
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	return &Query{src: src, prog: prog}, nil
}

func (q *Query) String() string {
	return q.src
}

func (q *Query) Match(n *ir.Node) (bool, error) {
	out, err := expr.Run(q.prog, NewEnv(n))
	if err != nil {
		return false, fmt.Errorf("%s: %w", n, err)
	}
	return out.(bool), nil
}

// Filter returns the nodes of seq matching q, stopping at the first
// evaluation error.
func (q *Query) Filter(seq iter.Seq[*ir.Node]) ([]*ir.Node, error) {
	var res []*ir.Node
	for n := range seq {
		ok, err := q.Match(n)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, n)
		}
	}
	return res, nil
}
