package ir

import "fmt"

// Kind is the kind of a plug [Value].
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	RealKind
	StringKind
	RealsKind
	LabelsKind
	StringsKind
	// RawKind holds a literal the value grammar does not decode, kept
	// verbatim.
	RawKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:    "Null",
		BoolKind:    "Bool",
		RealKind:    "Real",
		StringKind:  "String",
		RealsKind:   "Reals",
		LabelsKind:  "Labels",
		StringsKind: "Strings",
		RawKind:     "Raw",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":    NullKind,
		"Bool":    BoolKind,
		"Real":    RealKind,
		"String":  StringKind,
		"Reals":   RealsKind,
		"Labels":  LabelsKind,
		"Strings": StringsKind,
		"Raw":     RawKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		RealKind,
		StringKind,
		RealsKind,
		LabelsKind,
		StringsKind,
		RawKind,
	}
}

// IsList reports whether values of kind k hold a list.
func (k Kind) IsList() bool {
	switch k {
	case RealsKind, LabelsKind, StringsKind:
		return true
	default:
		return false
	}
}
