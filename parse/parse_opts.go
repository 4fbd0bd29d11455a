package parse

import (
	"github.com/hashicorp/go-hclog"
	"github.com/signadot/gproject/ir"
	"github.com/signadot/gproject/token"
)

type parseOpts struct {
	logger    hclog.Logger
	strict    bool
	positions map[ir.Object]*token.Pos
}

type ParseOption func(*parseOpts)

// WithLogger sets the logger receiving diagnostics.  By default
// diagnostics are discarded.
func WithLogger(l hclog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

// ParseStrict makes unknown commands and unrecognized lines fatal.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// ParsePositions records in m the position of the command which last
// defined each node and plug.
func ParsePositions(m map[ir.Object]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetLogger extracts the logger from the provided options, a null logger
// if none is set.
func GetLogger(opts ...ParseOption) hclog.Logger {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.logger == nil {
		return hclog.NewNullLogger()
	}
	return pOpts.logger
}
