// Package libdiff reports differences between original and modified scene
// file text.
//
// Diffs are computed at the character level with
// [github.com/sergi/go-diff/diffmatchpatch].  [Chars] summarizes a diff as
// the removed and the added text, [Spans] gives the changed regions with
// their offsets, and [Pretty] renders a diff for terminals.
package libdiff
