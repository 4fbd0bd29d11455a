package ir

// Truth reports whether v is truthy: non empty lists and strings, true,
// and non zero reals.
func Truth(v Value) bool {
	switch v.Kind {
	case BoolKind:
		return v.Bool
	case RealKind:
		return v.Real != 0
	case StringKind, RawKind:
		return v.String != ""
	case RealsKind:
		return len(v.Reals) != 0
	case LabelsKind, StringsKind:
		return len(v.Strings) != 0
	case NullKind:
		return false
	default:
		panic("kind")
	}
}
