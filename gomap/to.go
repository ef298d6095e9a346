package gomap

import (
	"fmt"

	"github.com/abarnert/pathy/ir"
)

// To converts an IR node back to a plain Go value. Objects become
// map[string]any (map[int64]any when int-keyed), so field order is not
// preserved.
func To(node *ir.Node) (any, error) {
	return to(node, "")
}

func to(node *ir.Node, path string) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		default:
			return node.Number, nil
		}
	case ir.ArrayType:
		elems := make([]any, len(node.Values))
		for i, v := range node.Values {
			e, err := to(v, childPath(path, fmt.Sprintf("%d", i)))
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return elems, nil
	case ir.ObjectType:
		if node.IntKeyed() {
			m := make(map[int64]any, len(node.Fields))
			for i, f := range node.Fields {
				if f.Int64 == nil {
					return nil, &ConvertError{
						FieldPath: childPath(path, f.ParentField),
						Message:   "mixed keys in int keyed object",
					}
				}
				v, err := to(node.Values[i], childPath(path, f.ParentField))
				if err != nil {
					return nil, err
				}
				m[*f.Int64] = v
			}
			return m, nil
		}
		m := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			v, err := to(node.Values[i], childPath(path, f.String))
			if err != nil {
				return nil, err
			}
			m[f.String] = v
		}
		return m, nil
	}
	return nil, &ConvertError{FieldPath: path, Message: fmt.Sprintf("unknown node type %v", node.Type)}
}
