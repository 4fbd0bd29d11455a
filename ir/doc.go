// Package ir holds the in memory object graph of a scene file.
//
// A [Graph] owns a tree of [Node]s rooted at the document node (object id
// 1).  Every node has a name, unique among its siblings, a type and a set of
// named [Plug]s.  Plugs carry a decoded [Value], the literal text it was
// decoded from, and the data flow links of the scene: at most one Input and
// any number of Outputs.  Data flow links are independent of the node tree
// and may form cycles.
//
// Nodes are addressed by paths.  An absolute path starts at the root
//
//	|Passes|RenderPass|Layer
//
// and an id path starts at the node with a given object id
//
//	$12|Layer
//
// Path segments escape the characters . $ | [ ] and backslash with a
// backslash, except for positionally named nodes whose segment is [N].
// Plugs are addressed by the path of their node followed by .name; plugs of
// the root use an empty node path.
//
// Nodes created on demand from path references in the file have id
// [ImplicitID] and type [UnresolvedType].
package ir
