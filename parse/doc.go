// Package parse builds an [ir.Graph] from the text of a scene file.
//
// # Usage
//
//	g, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// with diagnostics
//	g, err := parse.Parse(data, parse.WithLogger(hclog.Default()))
//
// Commands are interpreted in file order.  Grammar violations, unknown
// declared value types and plug inputs connected twice are fatal: Parse
// returns no graph.  Unknown commands, connections to expression nodes and
// references to an absent document object ($0) are skipped with a
// diagnostic.
//
// Nodes referenced by path before, or without, being created by a command
// of their own are created on demand as implicit nodes, see
// [ir.ImplicitID].  A later create of the same name adopts the implicit
// node.
//
// A plug defined more than once, by create or set, is updated in place so
// that its connections and object ids are kept.
//
// # Related Packages
//
//   - github.com/signadot/gproject/token - command scanning
//   - github.com/signadot/gproject/codec - value literals
//   - github.com/signadot/gproject/ir - the object graph
package parse
