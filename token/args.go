package token

import (
	"strconv"
	"strings"
)

// CreateArgs are the arguments of create and createnotref.
//
//	"Type","parent",name<rest>
type CreateArgs struct {
	Type string
	// Parent is the escaped body of the quoted parent reference, empty
	// when the object has no parent.
	Parent string
	Name   string
	// Indexed is set when the name was given as a bare integer.
	Indexed bool
	// Rest is the argument text following the name and RestOff its
	// offset in the argument text.
	Rest    string
	RestOff int
}

// PlugRest is the tail of a create command which creates a plug.
//
//	,flags,types.x[ {params}],value
type PlugRest struct {
	Flag  int
	Type  string
	Param string
	Value string
	// ValueOff is the offset of Value in the argument text of the command.
	ValueOff int
}

// RefRest is the tail of a create command which creates an
// ArchReference.
//
//	,"path",bool,bool,{params}|nil,bool
type RefRest struct {
	// Path is the escaped body of the quoted path.
	Path string
	// PathOff is the offset of the opening quote of the path in the
	// argument text of the command, PathEnd the offset following the
	// closing quote.
	PathOff, PathEnd int
	Param            string
}

// SetArgs are the arguments of set.
//
//	"$id[|path].plug",value
type SetArgs struct {
	Ref      string
	Value    string
	ValueOff int
}

// LinkArgs are the arguments of connect and depend.
//
//	"$id[|path][.plug]","$id[|path][.plug]"
type LinkArgs struct {
	In, Out string
}

type cursor struct {
	c   *Command
	s   string
	i   int
	off int
}

func (r *cursor) lit(l string) error {
	if !strings.HasPrefix(r.s[r.i:], l) {
		return r.c.Errorf("expected %q at %q", l, r.tail())
	}
	r.i += len(l)
	return nil
}

func (r *cursor) quoted() (string, error) {
	if r.i >= len(r.s) || r.s[r.i] != '"' {
		return "", r.c.Errorf("expected quoted string at %q", r.tail())
	}
	end, err := QuotedEnd(r.s, r.i)
	if err != nil {
		return "", r.c.Wrap(err, "")
	}
	body := r.s[r.i+1 : end]
	r.i = end + 1
	return body, nil
}

func (r *cursor) span(ok func(byte) bool) string {
	j := r.i
	for j < len(r.s) && ok(r.s[j]) {
		j++
	}
	res := r.s[r.i:j]
	r.i = j
	return res
}

func (r *cursor) tail() string {
	t := r.s[r.i:]
	if len(t) > 24 {
		t = t[:24] + "..."
	}
	return t
}

// ParseCreate parses the arguments of a create or createnotref command.
func ParseCreate(c *Command) (*CreateArgs, error) {
	r := &cursor{c: c, s: c.Args}
	res := &CreateArgs{}
	if err := r.lit(`"`); err != nil {
		return nil, err
	}
	res.Type = r.span(isAlnum)
	if res.Type == "" {
		return nil, c.Errorf("missing type")
	}
	if err := r.lit(`",`); err != nil {
		return nil, err
	}
	parent, err := r.quoted()
	if err != nil {
		return nil, err
	}
	if parent != `\"\"` {
		res.Parent = parent
	}
	if err := r.lit(","); err != nil {
		return nil, err
	}
	if r.i < len(r.s) && r.s[r.i] == '"' {
		name, err := r.quoted()
		if err != nil {
			return nil, err
		}
		res.Name = Unescape(name)
	} else {
		start := r.i
		if r.i < len(r.s) && r.s[r.i] == '-' {
			r.i++
		}
		if r.span(isDigit) == "" {
			return nil, c.Errorf("expected name at %q", r.s[start:])
		}
		res.Name = r.s[start:r.i]
		res.Indexed = true
	}
	res.Rest = r.s[r.i:]
	res.RestOff = r.i
	return res, nil
}

// ParsePlugRest parses the tail of a create command for a plug class.
func ParsePlugRest(c *Command, a *CreateArgs) (*PlugRest, error) {
	r := &cursor{c: c, s: a.Rest}
	res := &PlugRest{}
	if err := r.lit(","); err != nil {
		return nil, err
	}
	flag := r.span(isDigit)
	if flag == "" {
		return nil, c.Errorf("missing plug flags")
	}
	v, err := strconv.Atoi(flag)
	if err != nil {
		return nil, c.Wrap(ErrNumber, "plug flags %q", flag)
	}
	res.Flag = v
	if err := r.lit(","); err != nil {
		return nil, err
	}
	res.Type = r.span(func(b byte) bool { return isAlnum(b) || b == '.' })
	if res.Type == "" {
		return nil, c.Errorf("missing value type")
	}
	if strings.HasPrefix(r.s[r.i:], " {") {
		open := r.i + 1
		end := strings.LastIndex(r.s[open:], "},")
		if end == -1 {
			return nil, c.Errorf("unterminated parameters at %q", r.tail())
		}
		end += open
		res.Param = r.s[open : end+1]
		r.i = end + 1
	}
	if err := r.lit(","); err != nil {
		return nil, err
	}
	if r.i == len(r.s) {
		return nil, c.Errorf("missing value")
	}
	res.Value = r.s[r.i:]
	res.ValueOff = a.RestOff + r.i
	return res, nil
}

// ParseRefRest parses the tail of a create command for an ArchReference.
func ParseRefRest(c *Command, a *CreateArgs) (*RefRest, error) {
	r := &cursor{c: c, s: a.Rest}
	res := &RefRest{}
	if err := r.lit(","); err != nil {
		return nil, err
	}
	res.PathOff = a.RestOff + r.i
	path, err := r.quoted()
	if err != nil {
		return nil, err
	}
	res.Path = path
	res.PathEnd = a.RestOff + r.i
	for range 2 {
		if err := r.lit(","); err != nil {
			return nil, err
		}
		if err := r.bool(); err != nil {
			return nil, err
		}
	}
	if err := r.lit(","); err != nil {
		return nil, err
	}
	tail := r.s[r.i:]
	k := strings.LastIndexByte(tail, ',')
	if k == -1 {
		return nil, c.Errorf("missing trailing flag in %q", tail)
	}
	if b := tail[k+1:]; b != "true" && b != "false" {
		return nil, c.Errorf("expected boolean, got %q", b)
	}
	param := tail[:k]
	switch {
	case param == "nil":
	case len(param) >= 2 && param[0] == '{' && param[len(param)-1] == '}':
		res.Param = param
	default:
		return nil, c.Errorf("expected parameters or nil, got %q", param)
	}
	return res, nil
}

func (r *cursor) bool() error {
	switch {
	case strings.HasPrefix(r.s[r.i:], "true"):
		r.i += 4
	case strings.HasPrefix(r.s[r.i:], "false"):
		r.i += 5
	default:
		return r.c.Errorf("expected boolean at %q", r.tail())
	}
	return nil
}

// ParseSet parses the arguments of a set command.
func ParseSet(c *Command) (*SetArgs, error) {
	r := &cursor{c: c, s: c.Args}
	ref, err := r.quoted()
	if err != nil {
		return nil, err
	}
	if err := r.lit(","); err != nil {
		return nil, err
	}
	if r.i == len(r.s) {
		return nil, c.Errorf("missing value")
	}
	return &SetArgs{
		Ref:      ref,
		Value:    r.s[r.i:],
		ValueOff: r.i,
	}, nil
}

// ParseLink parses the arguments of a connect or depend command.
func ParseLink(c *Command) (*LinkArgs, error) {
	r := &cursor{c: c, s: c.Args}
	in, err := r.quoted()
	if err != nil {
		return nil, err
	}
	if err := r.lit(","); err != nil {
		return nil, err
	}
	out, err := r.quoted()
	if err != nil {
		return nil, err
	}
	if r.i != len(r.s) {
		return nil, c.Errorf("unexpected %q", r.tail())
	}
	return &LinkArgs{In: in, Out: out}, nil
}

// ParseDocFormatRevision parses the argument of docformatrevision.
func ParseDocFormatRevision(c *Command) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(c.Args))
	if err != nil {
		return 0, c.Wrap(ErrNumber, "document format revision %q", c.Args)
	}
	return v, nil
}
