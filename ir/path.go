package ir

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// PathSep separates node names in a path.
	PathSep = '|'
	// AttrSep separates the node part of a plug path from the plug name.
	AttrSep = '.'
)

const pathSpecials = `.$|[]\`

// EscapeSegment escapes the path specials in name with a backslash.
func EscapeSegment(name string) string {
	if strings.IndexAny(name, pathSpecials) == -1 {
		return name
	}
	b := &strings.Builder{}
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		if strings.IndexByte(pathSpecials, name[i]) != -1 {
			b.WriteByte('\\')
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// UnescapeSegment removes one level of backslash escaping.
func UnescapeSegment(seg string) string {
	if strings.IndexByte(seg, '\\') == -1 {
		return seg
	}
	b := make([]byte, 0, len(seg))
	for i := 0; i < len(seg); i++ {
		if seg[i] == '\\' && i+1 < len(seg) {
			i++
		}
		b = append(b, seg[i])
	}
	return string(b)
}

// Segment renders a node name as a path segment, positional names as
// [N].
func Segment(name string, indexed bool) string {
	if indexed {
		return "[" + name + "]"
	}
	return EscapeSegment(name)
}

// SegmentName returns the node name denoted by a path segment.
func SegmentName(seg string) (name string, indexed bool) {
	if isIndexSegment(seg) {
		return seg[1 : len(seg)-1], true
	}
	return UnescapeSegment(seg), false
}

// CanonSegment normalizes the escaping of a path segment.
func CanonSegment(seg string) string {
	return Segment(SegmentName(seg))
}

func isIndexSegment(seg string) bool {
	if len(seg) < 3 || seg[0] != '[' || seg[len(seg)-1] != ']' {
		return false
	}
	ds := seg[1 : len(seg)-1]
	if ds[0] == '-' {
		ds = ds[1:]
	}
	if ds == "" {
		return false
	}
	for i := 0; i < len(ds); i++ {
		if ds[i] < '0' || ds[i] > '9' {
			return false
		}
	}
	return true
}

// SplitPath splits p at every unescaped '|'.
func SplitPath(p string) []string {
	var res []string
	start := 0
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			i++
		case PathSep:
			res = append(res, p[start:i])
			start = i + 1
		}
	}
	return append(res, p[start:])
}

// SplitAttr splits p at its last unescaped '.'.
func SplitAttr(p string) (node, attr string, ok bool) {
	last := -1
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			i++
		case AttrSep:
			last = i
		}
	}
	if last == -1 {
		return p, "", false
	}
	return p[:last], p[last+1:], true
}

// JoinPath renders the absolute path of a node from its segments.
func JoinPath(segs ...string) string {
	return string(PathSep) + strings.Join(segs, string(PathSep))
}

// Path is a parsed public path: either absolute from the root
//
//	|seg|seg
//
// or anchored at an object id
//
//	$id|seg|seg
type Path struct {
	// Anchor is the object id the path starts from, meaningful when not
	// Absolute.
	Anchor   int
	Absolute bool
	// Segments holds the canonically escaped segments.
	Segments []string
}

func (p *Path) String() string {
	b := &strings.Builder{}
	if !p.Absolute {
		b.WriteString("$" + strconv.Itoa(p.Anchor))
	}
	for _, seg := range p.Segments {
		b.WriteByte(PathSep)
		b.WriteString(seg)
	}
	if p.Absolute && len(p.Segments) == 0 {
		b.WriteByte(PathSep)
	}
	return b.String()
}

func ParsePath(p string) (*Path, error) {
	res := &Path{}
	switch {
	case p == "":
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	case p[0] == PathSep:
		res.Absolute = true
		if p == string(PathSep) {
			return res, nil
		}
	case p[0] == '$':
		id, rest, err := parseAnchor(p)
		if err != nil {
			return nil, err
		}
		res.Anchor = id
		p = rest
		if p == "" {
			return res, nil
		}
		if p[0] != PathSep {
			return nil, fmt.Errorf("%w: expected '|' after $%d in %q", ErrPath, id, p)
		}
	default:
		return nil, fmt.Errorf("%w: %q should start with '|' or '$'", ErrPath, p)
	}
	segs, err := segments(p)
	if err != nil {
		return nil, err
	}
	res.Segments = segs
	return res, nil
}

func parseAnchor(p string) (int, string, error) {
	i := 1
	for i < len(p) && '0' <= p[i] && p[i] <= '9' {
		i++
	}
	if i == 1 {
		return 0, "", fmt.Errorf("%w: expected object id in %q", ErrPath, p)
	}
	id, err := strconv.Atoi(p[1:i])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrPath, err)
	}
	return id, p[i:], nil
}

// segments splits and canonicalizes "|a|b".
func segments(p string) ([]string, error) {
	parts := SplitPath(p)[1:]
	for i, seg := range parts {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrPath, p)
		}
		parts[i] = CanonSegment(seg)
	}
	return parts, nil
}

// Ref is an object reference as written inside a scene file:
//
//	$id[|seg|seg][.attr]
type Ref struct {
	ID       int
	Segments []string
	Attr     string
	HasAttr  bool
}

// ParseRef parses an in file reference.  If attr is set, a trailing
// .name is taken as an attribute name.
func ParseRef(s string, attr bool) (*Ref, error) {
	if s == "" || s[0] != '$' {
		return nil, fmt.Errorf("%w: reference %q should start with '$'", ErrPath, s)
	}
	id, rest, err := parseAnchor(s)
	if err != nil {
		return nil, err
	}
	res := &Ref{ID: id}
	if attr {
		node, a, ok := SplitAttr(rest)
		if ok {
			if !isWord(a) {
				return nil, fmt.Errorf("%w: bad attribute name %q in %q", ErrPath, a, s)
			}
			res.Attr = a
			res.HasAttr = true
			rest = node
		}
	}
	if rest == "" {
		return res, nil
	}
	if rest[0] != PathSep {
		return nil, fmt.Errorf("%w: expected '|' after $%d in %q", ErrPath, id, s)
	}
	res.Segments, err = segments(rest)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Ref) String() string {
	p := &Path{Anchor: r.ID, Segments: r.Segments}
	if r.HasAttr {
		return p.String() + string(AttrSep) + r.Attr
	}
	return p.String()
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		s = s[n:]
	}
	return true
}
