package token

import (
	"fmt"
	"strings"
)

// Quote returns s as a double quoted string literal.
//
// Backslashes and double quotes are escaped with a backslash, line feeds and
// tabs as the decimal escapes \010 and \009.
func Quote(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\010`)
		case '\t':
			b.WriteString(`\009`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unescape decodes the escapes of the body of a quoted string in a single
// pass, so that an escaped backslash is never reinterpreted as the start of
// another escape.
//
// Decimal escapes of up to 3 digits denote a byte, \n and \t denote line
// feed and tab, any other escaped character denotes itself.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	b := &strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		c = s[i]
		switch {
		case c == 'n':
			b.WriteByte('\n')
		case c == 't':
			b.WriteByte('\t')
		case isDigit(c):
			v, j := 0, i
			for j < len(s) && j < i+3 && isDigit(s[j]) {
				v = v*10 + int(s[j]-'0')
				j++
			}
			if v > 255 {
				b.WriteByte('\\')
				b.WriteByte(c)
				continue
			}
			b.WriteByte(byte(v))
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unquote decodes a double quoted string literal.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' {
		return "", fmt.Errorf("%w: %q is not quoted", ErrUnterminated, s)
	}
	end, err := QuotedEnd(s, 0)
	if err != nil {
		return "", err
	}
	if end != len(s)-1 {
		return "", fmt.Errorf("%w: trailing text after quoted string %q", ErrUnterminated, s)
	}
	return Unescape(s[1:end]), nil
}

// QuotedEnd returns the index of the double quote closing the quoted string
// which starts at s[i].
func QuotedEnd(s string, i int) (int, error) {
	if i >= len(s) || s[i] != '"' {
		return -1, fmt.Errorf("%w: expected '\"' at %d", ErrUnterminated, i)
	}
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnterminated, s[i:])
}

// IsQuoted reports whether s is a single complete quoted string.
func IsQuoted(s string) bool {
	if len(s) < 2 || s[0] != '"' {
		return false
	}
	end, err := QuotedEnd(s, 0)
	return err == nil && end == len(s)-1
}
