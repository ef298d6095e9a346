package encode

import (
	"bufio"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/abarnert/pathy/ir"
)

// encodeYAML renders via goccy/go-yaml. MapSlice keeps object field order.
// YAML output carries no colors.
func encodeYAML(w *bufio.Writer, node *ir.Node, es *EncState) error {
	v, err := yamlValue(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	// Encode appends the final newline itself
	if n := len(d); n > 0 && d[n-1] == '\n' {
		d = d[:n-1]
	}
	_, err = w.Write(d)
	return err
}

func yamlValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			field := node.Fields[i]
			var key any = field.String
			if field.Type == ir.NumberType && field.Int64 != nil {
				key = *field.Int64
			}
			val, err := yamlValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: key, Value: val}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := yamlValue(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		default:
			return node.Number, nil
		}
	default:
		return nil, fmt.Errorf("cannot encode %s node", node.Type)
	}
}
