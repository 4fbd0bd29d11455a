// Package edits loads batches of plug value edits for a scene document.
//
// Edits come from "path=literal" assignments ([ParseAssign]), from YAML
// files mapping plug paths to values ([LoadYAML]), or from JSON merge
// patches ([MergePatch]) and JSON patches ([JSONPatch]) applied to the
// plug value projection of a document ([Projection]).
//
// [Resolve] turns entries into [gproject.Edit]s, choosing the value kind of
// YAML and JSON values after the current value of the plug, so a list of
// strings edits a label set as labels and a string edits an opaque value
// verbatim.
package edits
