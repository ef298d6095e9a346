package decode

import (
	"errors"
	"fmt"

	"github.com/abarnert/pathy/debug"
	"github.com/abarnert/pathy/format"
	"github.com/abarnert/pathy/ir"
)

var ErrDecode = errors.New("decode error")

type DecodeOption func(*decState)

type decState struct {
	format *format.Format
}

// DecodeFormat fixes the input format. Without it, Decode tries JSON and
// falls back to YAML.
func DecodeFormat(f format.Format) DecodeOption {
	return func(ds *decState) { ds.format = &f }
}

// Decode parses d into an IR tree. Object field order follows the
// document: a select-all query over a decoded object yields values in
// definition order.
func Decode(d []byte, opts ...DecodeOption) (*ir.Node, error) {
	ds := &decState{}
	for _, opt := range opts {
		opt(ds)
	}
	if ds.format != nil {
		switch *ds.format {
		case format.YAMLFormat:
			return decodeYAML(d)
		default:
			return decodeJSON(d)
		}
	}
	node, jsonErr := decodeJSON(d)
	if jsonErr == nil {
		return node, nil
	}
	node, yamlErr := decodeYAML(d)
	if yamlErr == nil {
		if debug.Decode() {
			debug.Logf("decode: not JSON (%v), decoded as YAML\n", jsonErr)
		}
		return node, nil
	}
	return nil, fmt.Errorf("%w: as JSON: %v; as YAML: %v", ErrDecode, jsonErr, yamlErr)
}
