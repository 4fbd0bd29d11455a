package ir

import (
	"fmt"
	"slices"
	"strings"
)

const (
	IdentityTransform = "transform.Id"
	IdentityMatrix    = "matrix.Id"
)

// IsIdentity reports whether s is one of the bare identity literals.
func IsIdentity(s string) bool {
	return s == IdentityTransform || s == IdentityMatrix
}

// Value is the decoded value of a plug.
//
// Which fields are meaningful depends on Kind: Bool for BoolKind, Real for
// RealKind, String for StringKind and RawKind, Reals for RealsKind and
// Strings for LabelsKind and StringsKind.  Labels keep the order in which
// they appeared but compare as a set.
type Value struct {
	Kind    Kind
	Bool    bool
	Real    float64
	String  string
	Reals   []float64
	Strings []string
}

func Null() Value {
	return Value{}
}

func FromBool(b bool) Value {
	return Value{Kind: BoolKind, Bool: b}
}

func FromReal(f float64) Value {
	return Value{Kind: RealKind, Real: f}
}

func FromString(s string) Value {
	return Value{Kind: StringKind, String: s}
}

func FromRaw(s string) Value {
	return Value{Kind: RawKind, String: s}
}

func FromReals(rs ...float64) Value {
	return Value{Kind: RealsKind, Reals: slices.Clone(rs)}
}

func FromStrings(ss ...string) Value {
	return Value{Kind: StringsKind, Strings: slices.Clone(ss)}
}

// FromLabels returns a label set value, dropping empty and repeated
// labels.
func FromLabels(ls ...string) Value {
	v := Value{Kind: LabelsKind, Strings: make([]string, 0, len(ls))}
	for _, l := range ls {
		if l == "" || slices.Contains(v.Strings, l) {
			continue
		}
		v.Strings = append(v.Strings, l)
	}
	return v
}

func (v Value) IsNull() bool {
	return v.Kind == NullKind
}

// HasLabel reports whether the label set v contains l.
func (v Value) HasLabel(l string) bool {
	return v.Kind == LabelsKind && slices.Contains(v.Strings, l)
}

func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case NullKind:
		return true
	case BoolKind:
		return v.Bool == o.Bool
	case RealKind:
		return v.Real == o.Real
	case StringKind, RawKind:
		return v.String == o.String
	case RealsKind:
		return slices.Equal(v.Reals, o.Reals)
	case StringsKind:
		return slices.Equal(v.Strings, o.Strings)
	case LabelsKind:
		for _, l := range v.Strings {
			if !slices.Contains(o.Strings, l) {
				return false
			}
		}
		for _, l := range o.Strings {
			if !slices.Contains(v.Strings, l) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Any returns v as a plain Go value: nil, bool, float64, string, []float64
// or []string.
func (v Value) Any() any {
	switch v.Kind {
	case BoolKind:
		return v.Bool
	case RealKind:
		return v.Real
	case StringKind, RawKind:
		return v.String
	case RealsKind:
		return slices.Clone(v.Reals)
	case LabelsKind, StringsKind:
		return slices.Clone(v.Strings)
	default:
		return nil
	}
}

// FromAny converts a plain Go value, as produced by decoding YAML or JSON,
// into a Value.  hint selects between kinds sharing a representation: a
// list of strings becomes a label set, and a string a comma separated label
// set or a raw literal, when hint asks for it.
func FromAny(x any, hint Kind) (Value, error) {
	switch y := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(y), nil
	case string:
		switch hint {
		case LabelsKind:
			return FromLabels(strings.Split(y, ",")...), nil
		case RawKind:
			return FromRaw(y), nil
		}
		return FromString(y), nil
	case []float64:
		return FromReals(y...), nil
	case []string:
		if hint == LabelsKind {
			return FromLabels(y...), nil
		}
		return FromStrings(y...), nil
	case []any:
		return fromList(y, hint)
	}
	if f, ok := toReal(x); ok {
		return FromReal(f), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported %T", ErrValue, x)
}

func fromList(xs []any, hint Kind) (Value, error) {
	if len(xs) == 0 {
		switch hint {
		case LabelsKind:
			return FromLabels(), nil
		case StringsKind:
			return FromStrings(), nil
		}
		return FromReals(), nil
	}
	if _, ok := xs[0].(string); ok {
		ss := make([]string, len(xs))
		for i, x := range xs {
			s, ok := x.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: mixed list element %T", ErrValue, x)
			}
			ss[i] = s
		}
		if hint == LabelsKind {
			return FromLabels(ss...), nil
		}
		return FromStrings(ss...), nil
	}
	rs := make([]float64, len(xs))
	for i, x := range xs {
		f, ok := toReal(x)
		if !ok {
			return Value{}, fmt.Errorf("%w: mixed list element %T", ErrValue, x)
		}
		rs[i] = f
	}
	return Value{Kind: RealsKind, Reals: rs}, nil
}

func toReal(x any) (float64, bool) {
	switch y := x.(type) {
	case float64:
		return y, true
	case float32:
		return float64(y), true
	case int:
		return float64(y), true
	case int64:
		return float64(y), true
	case int32:
		return float64(y), true
	case uint64:
		return float64(y), true
	case uint32:
		return float64(y), true
	case uint:
		return float64(y), true
	}
	return 0, false
}
