package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/gproject/ir"
	"github.com/signadot/gproject/token"
)

// Params are the numeric parameters of a declared value, e.g.
// {min=0,max=16}.
type Params map[string]float64

// Infer decodes a bare literal, as found in set commands, by its shape.
//
// Literals of unsupported shape are returned verbatim as a raw value with
// ok false.
func Infer(raw string) (v ir.Value, ok bool) {
	switch {
	case raw == "true":
		return ir.FromBool(true), true
	case raw == "false":
		return ir.FromBool(false), true
	case ir.IsIdentity(raw):
		return ir.FromRaw(raw), true
	case token.IsQuoted(raw):
		return ir.FromString(token.Unescape(raw[1 : len(raw)-1])), true
	case isNumeric(raw):
		if f, err := parseReal(raw); err == nil {
			return ir.FromReal(f), true
		}
	case isBraced(raw):
		// bare lists are compact; spacing between elements is not kept.
		if rs, err := parseReals(raw, parseReal); err == nil && !strings.ContainsAny(raw, " \t") {
			return ir.Value{Kind: ir.RealsKind, Reals: rs}, true
		}
		if ss, err := parseStrings(raw, false); err == nil {
			return ir.Value{Kind: ir.StringsKind, Strings: ss}, true
		}
	}
	return ir.FromRaw(raw), false
}

// Decode decodes the literal of a create command according to its declared
// type decl.  param is the parameter sub literal, if any; it is decoded for
// numeric types only.
func Decode(decl, raw, param string) (ir.Value, Params, error) {
	r, ok := declared[decl]
	if !ok {
		return ir.Value{}, nil, fmt.Errorf("%w: %q", ErrUnknownType, decl)
	}
	params := Params{}
	var (
		v   ir.Value
		err error
	)
	switch r {
	case ruleReal:
		var f float64
		f, err = parseNumber(raw)
		v = ir.FromReal(f)
	case ruleInt:
		var f float64
		f, err = parseInt(raw)
		v = ir.FromReal(f)
	case ruleNilInt:
		if raw == "nil" {
			break
		}
		var f float64
		f, err = parseInt(raw)
		v = ir.FromReal(f)
	case ruleBool:
		switch raw {
		case "true", "false":
			v = ir.FromBool(raw == "true")
		default:
			err = fmt.Errorf("%w: %q is not a boolean", ErrLiteral, raw)
		}
	case ruleString:
		if token.IsQuoted(raw) {
			v = ir.FromString(token.Unescape(raw[1 : len(raw)-1]))
		} else {
			v = ir.FromString(raw)
		}
	case ruleStrip:
		v = ir.FromString(stripQuotes(raw))
	case ruleReals:
		var rs []float64
		rs, err = parseReals(raw, parseNumber)
		v = ir.Value{Kind: ir.RealsKind, Reals: rs}
	case ruleLabels:
		body := strings.ReplaceAll(stripQuotes(raw), " ", "")
		v = ir.FromLabels(strings.Split(body, ",")...)
	case ruleStrings:
		var ss []string
		ss, err = parseStrings(raw, true)
		v = ir.Value{Kind: ir.StringsKind, Strings: ss}
	case ruleRaw:
		v = ir.FromRaw(raw)
	}
	if err != nil {
		return ir.Value{}, nil, fmt.Errorf("%s: %w", decl, err)
	}
	if param != "" && (r == ruleReal || r == ruleInt) {
		params, err = ParseParams(param)
		if err != nil {
			return ir.Value{}, nil, fmt.Errorf("%s: %w", decl, err)
		}
	}
	return v, params, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' {
			return false
		}
	}
	return true
}

func isBraced(s string) bool {
	return len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}'
}

func looseQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// stripQuotes removes one layer of surrounding quotes without decoding
// escapes.
func stripQuotes(s string) string {
	if looseQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

func parseReal(s string) (float64, error) {
	if !isNumeric(s) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrLiteral, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLiteral, err)
	}
	return f, nil
}

// parseNumber accepts any finite number, including exponent forms.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrLiteral, s)
	}
	return f, nil
}

func parseInt(s string) (float64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return float64(i), nil
	}
	f, ferr := parseNumber(s)
	if ferr != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrLiteral, s)
	}
	return f, nil
}

// parseReals decodes {a,b,c}, accepting spaces around the elements.
func parseReals(s string, elt func(string) (float64, error)) ([]float64, error) {
	if !isBraced(s) {
		return nil, fmt.Errorf("%w: %q is not a list", ErrLiteral, s)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return []float64{}, nil
	}
	parts := strings.Split(body, ",")
	res := make([]float64, len(parts))
	for i, p := range parts {
		f, err := elt(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		res[i] = f
	}
	return res, nil
}

// parseStrings decodes {"a","b"}.  Spaces around the elements are accepted
// only if spaced.
func parseStrings(s string, spaced bool) ([]string, error) {
	if !isBraced(s) {
		return nil, fmt.Errorf("%w: %q is not a list", ErrLiteral, s)
	}
	body := s[1 : len(s)-1]
	skip := func(i int) int {
		if spaced {
			return skipSpace(body, i)
		}
		return i
	}
	res := []string{}
	i := skip(0)
	if i == len(body) {
		return res, nil
	}
	for {
		end, err := token.QuotedEnd(body, i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLiteral, err)
		}
		res = append(res, token.Unescape(body[i+1:end]))
		i = skip(end + 1)
		if i == len(body) {
			return res, nil
		}
		if body[i] != ',' {
			return nil, fmt.Errorf("%w: expected ',' in %q", ErrLiteral, s)
		}
		i = skip(i + 1)
	}
}

func skipSpace(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}
