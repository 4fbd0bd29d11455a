package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/gproject/ir"
	"github.com/signadot/gproject/token"
)

// Encode renders v as a bare literal, the inverse of [Infer].
func Encode(v ir.Value) (string, error) {
	switch v.Kind {
	case ir.NullKind:
		return "nil", nil
	case ir.BoolKind:
		return strconv.FormatBool(v.Bool), nil
	case ir.RealKind:
		return FormatReal(v.Real)
	case ir.StringKind:
		if ir.IsIdentity(v.String) {
			return v.String, nil
		}
		return token.Quote(v.String), nil
	case ir.RawKind:
		return v.String, nil
	case ir.RealsKind:
		return formatReals(v.Reals)
	case ir.StringsKind:
		return formatStrings(v.Strings), nil
	case ir.LabelsKind:
		return token.Quote(strings.Join(v.Strings, ",")), nil
	default:
		return "", fmt.Errorf("%w: kind %s", ErrEncode, v.Kind)
	}
}

// EncodeDeclared renders v for a plug of declared type decl, the inverse of
// [Decode].  literal is the literal the plug was decoded from, which decides
// whether quoting is kept for types accepting both forms.  An empty decl
// falls back to [Encode].
func EncodeDeclared(decl string, v ir.Value, literal string) (string, error) {
	r, ok := declared[decl]
	if !ok || v.Kind == ir.RawKind {
		return Encode(v)
	}
	quoted := literal == "" || looseQuoted(literal)
	switch {
	case r == ruleReal && v.Kind == ir.RealKind:
		return FormatReal(v.Real)
	case (r == ruleInt || r == ruleNilInt) && v.Kind == ir.RealKind:
		if v.Real != math.Trunc(v.Real) || math.IsInf(v.Real, 0) {
			return "", fmt.Errorf("%w: %v is not an integer for %s", ErrEncode, v.Real, decl)
		}
		return FormatReal(v.Real)
	case r == ruleNilInt && v.Kind == ir.NullKind:
		return "nil", nil
	case r == ruleBool && v.Kind == ir.BoolKind:
		return strconv.FormatBool(v.Bool), nil
	case r == ruleString && v.Kind == ir.StringKind:
		if quoted {
			return token.Quote(v.String), nil
		}
		return v.String, nil
	case r == ruleStrip && v.Kind == ir.StringKind:
		if quoted {
			return unescapedQuote(decl, v.String)
		}
		return v.String, nil
	case r == ruleReals && v.Kind == ir.RealsKind:
		return formatReals(v.Reals)
	case r == ruleLabels && v.Kind == ir.LabelsKind:
		s := strings.Join(v.Strings, ",")
		if quoted {
			return unescapedQuote(decl, s)
		}
		return s, nil
	case r == ruleStrings && v.Kind == ir.StringsKind:
		return formatStrings(v.Strings), nil
	}
	return "", fmt.Errorf("%w: %s value for %s", ErrEncode, v.Kind, decl)
}

// unescapedQuote quotes s for types whose literal is not escape decoded.
func unescapedQuote(decl, s string) (string, error) {
	if strings.Contains(s, `"`) {
		return "", fmt.Errorf("%w: %q contains a quote, not representable for %s", ErrEncode, s, decl)
	}
	return `"` + s + `"`, nil
}

// FormatReal renders f without a decimal point when it is integral and
// with its shortest decimal representation otherwise.
func FormatReal(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("%w: %v", ErrEncode, f)
	}
	if f == 0 {
		return "0", nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func formatReals(rs []float64) (string, error) {
	b := &strings.Builder{}
	b.WriteByte('{')
	for i, r := range rs {
		if i != 0 {
			b.WriteByte(',')
		}
		s, err := FormatReal(r)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteByte('}')
	return b.String(), nil
}

func formatStrings(ss []string) string {
	b := &strings.Builder{}
	b.WriteByte('{')
	for i, s := range ss {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(token.Quote(s))
	}
	b.WriteByte('}')
	return b.String()
}
