// Package encode renders a scene node subtree.
//
// The text format is an indented outline, one node per line followed by
// its plugs when [EncodePlugs] is set:
//
//	LUIDocument GADocument $1
//	  Scene SceneGraphNode $2
//	    Model SceneGraphNode $3
//	      .Gain = 1.5 types.float
//
// Implicit nodes carry "~" in place of an object id.  Plug values are
// written in scene file literal syntax.
//
// The YAML and JSON formats render the same tree as nested objects, see
// [Tree].
package encode
