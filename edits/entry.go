package edits

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/signadot/gproject"
	"github.com/signadot/gproject/codec"
	"github.com/signadot/gproject/ir"
)

var ErrEdit = errors.New("edit error")

// Entry assigns a value to the plug at Path.  The value is either a scene
// file literal or a plain Go value as decoded from YAML or JSON.
type Entry struct {
	Path    string
	Literal string
	Value   any
	literal bool
}

// ParseAssign parses s of the form path=literal.
func ParseAssign(s string) (Entry, error) {
	i := strings.IndexByte(s, '=')
	if i <= 0 {
		return Entry{}, fmt.Errorf("%w: expected path=literal, got %q", ErrEdit, s)
	}
	return Entry{Path: s[:i], Literal: s[i+1:], literal: true}, nil
}

// LoadYAML reads a YAML mapping from plug paths to values, keeping the
// order of the file.
func LoadYAML(d []byte) ([]Entry, error) {
	var ms yaml.MapSlice
	if err := yaml.Unmarshal(d, &ms); err != nil {
		return nil, err
	}
	res := make([]Entry, 0, len(ms))
	for _, item := range ms {
		k, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: key %v is not a path", ErrEdit, item.Key)
		}
		res = append(res, Entry{Path: k, Value: item.Value})
	}
	return res, nil
}

// Resolve looks up the plug of each entry and decodes its value.  All
// failing entries are reported.
func Resolve(doc *gproject.Document, entries []Entry) ([]gproject.Edit, error) {
	var errs *multierror.Error
	res := make([]gproject.Edit, 0, len(entries))
	for _, e := range entries {
		p, err := doc.PathToPlug(e.Path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		v, err := e.decode(p)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", e.Path, err))
			continue
		}
		res = append(res, gproject.Edit{Plug: p, Value: v})
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Entry) decode(p *ir.Plug) (ir.Value, error) {
	if !e.literal {
		return ir.FromAny(e.Value, p.Value.Kind)
	}
	if p.Decl != "" {
		v, _, err := codec.Decode(p.Decl, e.Literal, "")
		return v, err
	}
	v, ok := codec.Infer(e.Literal)
	if !ok {
		return ir.Value{}, fmt.Errorf("%w: unsupported literal %q", ErrEdit, e.Literal)
	}
	return v, nil
}
