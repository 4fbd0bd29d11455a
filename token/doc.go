// Package token scans the line oriented command syntax of Guerilla scene
// files (.gproject, .glayer, .grendergraph).
//
// [Scan] splits a document into [Command] records, one per physical line of
// the form
//
//	oid[N]=name(args)
//	name(args)
//
// keeping the byte offset of every command's argument text so that value
// literals can later be located and replaced in place.
//
// The argument grammars of the individual commands are parsed by
// [ParseCreate], [ParsePlugRest], [ParseRefRest], [ParseSet] and
// [ParseLink]. All of them report byte offsets relative to the argument
// text of the command they were given.
//
// [Quote] and [Unescape] implement the escaping used by quoted strings in
// these files.
package token
