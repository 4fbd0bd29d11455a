package token

import (
	"errors"
	"testing"
)

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		`"`,
		`\`,
		`\\"`,
		"line\nbreak\ttab",
		"\n5",
		"$1|Layer.Mode",
		"∞∞",
		`C:\path\to\file.gproject`,
	} {
		q := Quote(s)
		uq, err := Unquote(q)
		if err != nil {
			t.Errorf("unquote %q (from %q): %v", q, s, err)
			continue
		}
		if uq != s {
			t.Errorf("unquote(quote(%q)) = %q", s, uq)
		}
	}
}

func TestUnescape(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{`a\010b`, "a\nb"},
		{`a\009b`, "a\tb"},
		{`\"x\"`, `"x"`},
		{`\\010`, `\010`},
		{`\\\"`, `\"`},
		{`a\nb`, "a\nb"},
		{`\|`, `|`},
		{`\999`, `\999`},
		{`end\`, `end\`},
	} {
		if got := Unescape(tc.in); got != tc.out {
			t.Errorf("Unescape(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestQuotedEnd(t *testing.T) {
	for _, tc := range []struct {
		in  string
		end int
	}{
		{`"abc",1`, 4},
		{`"a\"b",1`, 5},
		{`"a\\",1`, 4},
		{`""`, 1},
	} {
		end, err := QuotedEnd(tc.in, 0)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if end != tc.end {
			t.Errorf("%q: end %d, want %d", tc.in, end, tc.end)
		}
	}
	if _, err := QuotedEnd(`"abc\"`, 0); !errors.Is(err, ErrUnterminated) {
		t.Errorf("expected unterminated, got %v", err)
	}
}

func TestIsQuoted(t *testing.T) {
	for s, want := range map[string]bool{
		`"a"`:     true,
		`""`:      true,
		`"a","b"`: false,
		`"`:       false,
		`a`:       false,
		`"a\"`:    false,
	} {
		if got := IsQuoted(s); got != want {
			t.Errorf("IsQuoted(%q) = %t", s, got)
		}
	}
}
