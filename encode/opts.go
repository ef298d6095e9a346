package encode

import (
	"github.com/abarnert/pathy/format"
	"github.com/abarnert/pathy/ir"
)

type EncodeOption func(*EncState)

type EncState struct {
	format format.Format
	wire   bool
	indent int
	Color  func(t ir.Type, a ColorAttr, s string) string
}

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

// EncodeWire encodes compactly, with no indentation or spacing.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// Indent sets the indent width. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
