package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// The IR itself is representable in JSON so that node trees can be stored
// and moved around in contexts without pathy support. This is the IR's own
// serialization, distinct from encoding the value a tree represents (see
// the encode package for that).

type irBase struct {
	Type    Type     `json:"type"`
	Fields  []*Node  `json:"fields,omitempty"`
	Values  []*Node  `json:"values,omitempty"`
	Number  string   `json:"number,omitempty"`
	Float64 *float64 `json:"float,omitempty"`
	Int64   *int64   `json:"int,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    y.Type,
		Fields:  y.Fields,
		Values:  y.Values,
		Number:  y.Number,
		Float64: y.Float64,
		Int64:   y.Int64,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Values = tmp.Values
	y.Fields = tmp.Fields
	y.Bool = tmp.Bool
	y.String = tmp.String
	y.Number = tmp.Number
	y.Int64 = tmp.Int64
	y.Float64 = tmp.Float64

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("object with %d fields but %d values", len(y.Fields), len(y.Values))
		}
		for i, f := range y.Fields {
			f.Parent = y
			f.ParentIndex = i
			v := y.Values[i]
			v.Parent = y
			v.ParentIndex = i
			switch f.Type {
			case StringType:
				f.ParentField = f.String
			case NumberType:
				if f.Int64 == nil {
					return fmt.Errorf("non-integer object key at index %d", i)
				}
				f.ParentField = strconv.FormatInt(*f.Int64, 10)
				f.String = f.ParentField
			default:
				return fmt.Errorf("object key of type %s at index %d", f.Type, i)
			}
			v.ParentField = f.ParentField
		}
	case ArrayType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("array with %d fields", len(y.Fields))
		}
		for i, v := range y.Values {
			v.Parent = y
			v.ParentIndex = i
		}
	default:
		if len(y.Fields) != 0 || len(y.Values) != 0 {
			return fmt.Errorf("%s node with children", y.Type)
		}
	}
	return nil
}

func ToJSON(node *Node) ([]byte, error) {
	return json.Marshal(node)
}

func FromJSON(d []byte) (*Node, error) {
	node := &Node{}
	if err := json.Unmarshal(d, node); err != nil {
		return nil, err
	}
	return node, nil
}
