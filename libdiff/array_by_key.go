package libdiff

import (
	"fmt"

	"github.com/abarnert/pathy/decode"
	"github.com/abarnert/pathy/encode"
	"github.com/abarnert/pathy/ir"
)

// DiffArrayByKey diffs two arrays of objects by matching elements on
// the value under key rather than by position. The result is an array
// of per-element descriptions, each carrying the key value, nil when
// nothing changed.
func DiffArrayByKey(from, to *ir.Node, key string, df DiffFunc) (*ir.Node, error) {
	fromObj, err := keyedObject(from, key)
	if err != nil {
		return nil, err
	}
	toObj, err := keyedObject(to, key)
	if err != nil {
		return nil, err
	}
	objDiff := DiffObject(fromObj, toObj, df)
	if objDiff == nil {
		return nil, nil
	}
	items := make([]*ir.Node, len(objDiff.Values))
	for i, v := range objDiff.Values {
		var resMap map[string]*ir.Node
		if v.Type == ir.ObjectType && !v.IntKeyed() {
			resMap = ir.ToMap(v)
		} else {
			resMap = map[string]*ir.Node{ChangesField: v}
		}
		keyVal, err := decode.Decode([]byte(objDiff.Fields[i].String))
		if err != nil {
			return nil, err
		}
		resMap[key] = keyVal
		items[i] = ir.FromMap(resMap)
	}
	return ir.FromSlice(items), nil
}

// keyedObject rebuilds an array of objects as an object keyed by the
// wire encoding of each element's key value.
func keyedObject(arr *ir.Node, key string) (*ir.Node, error) {
	m := make(map[string]*ir.Node, len(arr.Values))
	for i, val := range arr.Values {
		if val.Type != ir.ObjectType {
			return nil, fmt.Errorf("element %d is %s, not an object", i, val.Type)
		}
		kv := ir.Get(val, key)
		if kv == nil {
			return nil, fmt.Errorf("element %d has no %q field", i, key)
		}
		m[encode.MustString(kv, encode.EncodeWire(true))] = val.Clone()
	}
	return ir.FromMap(m), nil
}
