// Package format names the output formats of scene trees.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	name, short string
	suffix      string
}

var formats = [...]formatInfo{
	TextFormat: {"text", "t", ".txt"},
	YAMLFormat: {"yaml", "y", ".yaml"},
	JSONFormat: {"json", "j", ".json"},
}

func (f Format) info() (formatInfo, bool) {
	if f < 0 || int(f) >= len(formats) {
		return formatInfo{}, false
	}
	return formats[f], true
}

// ParseFormat accepts the name of a format or its first letter.
func ParseFormat(v string) (Format, error) {
	for i, fi := range formats {
		if v == fi.name || v == fi.short {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	fi, ok := f.info()
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(fi.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	fi, _ := f.info()
	return fi.suffix
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, YAMLFormat, JSONFormat}
}
