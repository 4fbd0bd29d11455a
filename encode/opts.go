package encode

import "github.com/signadot/gproject/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeDepth limits output to n levels below the encoded node.  0 means
// no limit.
func EncodeDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}
func EncodePlugs(v bool) EncodeOption {
	return func(es *EncState) { es.plugs = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
