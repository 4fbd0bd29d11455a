package codec

import (
	"fmt"
	"strings"
)

// ParseParams decodes a parameter sub literal
//
//	{name=number,name=number}
//
// Nothing but names and numbers is accepted.
func ParseParams(s string) (Params, error) {
	s = strings.TrimSpace(s)
	if !isBraced(s) {
		return nil, fmt.Errorf("%w: parameters %q are not braced", ErrLiteral, s)
	}
	res := Params{}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return res, nil
	}
	for _, kv := range strings.Split(body, ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected name=value in parameters %q", ErrLiteral, s)
		}
		k = strings.TrimSpace(k)
		if !isParamName(k) {
			return nil, fmt.Errorf("%w: bad parameter name %q", ErrLiteral, k)
		}
		f, err := parseNumber(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", k, err)
		}
		res[k] = f
	}
	return res, nil
}

func isParamName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
