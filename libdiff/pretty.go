package libdiff

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Colors struct {
	Removed *color.Color
	Added   *color.Color
	Line    *color.Color
}

func NewColors() *Colors {
	return &Colors{
		Removed: color.New(color.FgRed, color.CrossedOut),
		Added:   color.New(color.FgGreen),
		Line:    color.New(color.FgCyan),
	}
}

// Pretty writes the lines of to which differ from from, prefixed by their
// 1-based line number, with removed and added text marked inline.  With nil
// colors, removals are written as [-text-] and additions as {+text+}.
func Pretty(w io.Writer, from, to string, c *Colors) error {
	var (
		line    strings.Builder
		changed bool
		lno     = 1
	)
	flush := func() error {
		defer func() {
			line.Reset()
			changed = false
			lno++
		}()
		if !changed {
			return nil
		}
		num := strconv.Itoa(lno) + ": "
		if c != nil {
			num = c.Line.Sprint(num)
		}
		_, err := io.WriteString(w, num+line.String()+"\n")
		return err
	}
	write := func(typ diffpatch.Operation, s string) {
		if s == "" {
			return
		}
		switch {
		case typ == diffpatch.DiffEqual:
			line.WriteString(s)
		case c == nil && typ == diffpatch.DiffDelete:
			line.WriteString("[-" + s + "-]")
		case c == nil:
			line.WriteString("{+" + s + "+}")
		case typ == diffpatch.DiffDelete:
			line.WriteString(c.Removed.Sprint(s))
		default:
			line.WriteString(c.Added.Sprint(s))
		}
		if typ != diffpatch.DiffEqual {
			changed = true
		}
	}
	for _, d := range diffs(from, to) {
		parts := strings.Split(d.Text, "\n")
		for i, part := range parts {
			write(d.Type, part)
			if i == len(parts)-1 {
				break
			}
			// line numbers follow the new text
			if d.Type == diffpatch.DiffDelete {
				changed = true
				continue
			}
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if line.Len() > 0 || changed {
		return flush()
	}
	return nil
}
