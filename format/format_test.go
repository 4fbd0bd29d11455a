package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		g, err := ParseFormat(f.String())
		if err != nil || g != f {
			t.Errorf("%s: got %s %v", f, g, err)
		}
		short := f.String()[:1]
		if g, _ := ParseFormat(short); g != f {
			t.Errorf("%s: short form %q gives %s", f, short, g)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil || !f.IsJSON() {
		t.Errorf("got %s %v", f, err)
	}
}

func TestSuffix(t *testing.T) {
	for f, want := range map[Format]string{TextFormat: ".txt", YAMLFormat: ".yaml", JSONFormat: ".json", Format(7): ""} {
		if got := f.Suffix(); got != want {
			t.Errorf("%d: got %q", f, got)
		}
	}
	if _, err := Format(-1).MarshalText(); err == nil {
		t.Error("marshaled bad format")
	}
}
