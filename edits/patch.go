package edits

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/gproject"
)

// Projection returns the JSON object mapping the path of every plug with a
// literal in doc to its value.
func Projection(doc *gproject.Document) ([]byte, error) {
	return json.Marshal(project(doc))
}

func project(doc *gproject.Document) map[string]any {
	res := map[string]any{}
	for p := range doc.Plugs() {
		if !p.Span.Valid() {
			continue
		}
		path, err := p.Path()
		if err != nil {
			continue
		}
		res[path] = p.Value.Any()
	}
	return res
}

// MergePatch applies the RFC 7386 merge patch to the projection of doc
// and returns the edits of the plugs whose value changed.  Patches may not
// add or remove plugs.
func MergePatch(doc *gproject.Document, patch []byte) ([]gproject.Edit, error) {
	org, err := Projection(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(org, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEdit, err)
	}
	return changes(doc, org, out)
}

// JSONPatch applies the RFC 6902 patch to the projection of doc, see
// [MergePatch].
func JSONPatch(doc *gproject.Document, patch []byte) ([]gproject.Edit, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEdit, err)
	}
	org, err := Projection(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(org)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEdit, err)
	}
	return changes(doc, org, out)
}

func changes(doc *gproject.Document, org, out []byte) ([]gproject.Edit, error) {
	// both sides go through JSON so numbers and lists have the same Go types
	var before, after map[string]any
	if err := json.Unmarshal(org, &before); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(out, &after); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEdit, err)
	}
	for _, k := range slices.Sorted(maps.Keys(before)) {
		if _, ok := after[k]; !ok {
			return nil, fmt.Errorf("%w: cannot remove plug %s", ErrEdit, k)
		}
	}
	var entries []Entry
	for _, k := range slices.Sorted(maps.Keys(after)) {
		v := after[k]
		o, ok := before[k]
		if !ok {
			return nil, fmt.Errorf("%w: no plug %s with a literal", ErrEdit, k)
		}
		if reflect.DeepEqual(o, v) {
			continue
		}
		entries = append(entries, Entry{Path: k, Value: v})
	}
	return Resolve(doc, entries)
}
