package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffs(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	ds := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffCleanupMerge(ds)
}

// Chars returns the concatenation of the text removed from and added to
// from to produce to.
func Chars(from, to string) (removed, added string) {
	var rm, add strings.Builder
	for _, d := range diffs(from, to) {
		switch d.Type {
		case diffpatch.DiffDelete:
			rm.WriteString(d.Text)
		case diffpatch.DiffInsert:
			add.WriteString(d.Text)
		}
	}
	return rm.String(), add.String()
}

// Span is a changed region: From[Off:Off+len(Removed)] of the original
// text was replaced by Added.
type Span struct {
	Off     int
	Removed string
	Added   string
}

// Spans returns the changed regions of from in increasing offset order.
// Adjacent deletions and insertions are merged into one span.
func Spans(from, to string) []Span {
	var (
		res []Span
		cur *Span
		off int
	)
	for _, d := range diffs(from, to) {
		switch d.Type {
		case diffpatch.DiffEqual:
			if cur != nil {
				res = append(res, *cur)
				cur = nil
			}
			off += len(d.Text)
		case diffpatch.DiffDelete:
			if cur == nil {
				cur = &Span{Off: off}
			}
			cur.Removed += d.Text
			off += len(d.Text)
		case diffpatch.DiffInsert:
			if cur == nil {
				cur = &Span{Off: off}
			}
			cur.Added += d.Text
		}
	}
	if cur != nil {
		res = append(res, *cur)
	}
	return res
}
