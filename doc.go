// Package gproject reads, queries and edits Guerilla scene files
// (.gproject, .glayer, .grendergraph).
//
// A [Document] is parsed once from the text of a file.  Nodes and plugs
// are reached through paths, see package ir, or by iterating over
// [Document.Nodes] and [Document.Plugs].
//
// Edits change plug values through [Document.SetPlugValues].  The modified
// document differs from the original only in the bytes of the edited
// literals:
//
//	doc, err := gproject.ParseFile("scene.gproject")
//	if err != nil {
//	    return err
//	}
//	p, err := doc.PathToPlug("|Scene|Model.Gain")
//	if err != nil {
//	    return err
//	}
//	if err := doc.SetPlugValues(gproject.Edit{Plug: p, Value: ir.FromReal(2)}); err != nil {
//	    return err
//	}
//	return doc.Write("scene.gproject")
//
// A Document is not safe for concurrent use.
package gproject
