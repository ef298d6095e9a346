package decode

import (
	"fmt"
	"math"
	"strconv"

	"github.com/abarnert/pathy/ir"

	"github.com/goccy/go-yaml"
)

func decodeYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return yamlNode(v)
}

func yamlNode(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return numberNode(strconv.FormatUint(t, 10)), nil
		}
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case []any:
		elems := make([]*ir.Node, len(t))
		for i, e := range t {
			node, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			elems[i] = node
		}
		return ir.FromSlice(elems), nil
	case yaml.MapSlice:
		return yamlObject(t)
	}
	return nil, fmt.Errorf("unsupported yaml value of type %T", v)
}

// yamlObject maps keys to object fields. String keys and integer keys
// both occur; an object must use one kind throughout.
func yamlObject(ms yaml.MapSlice) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(ms))
	intKeys, strKeys := 0, 0
	for _, item := range ms {
		val, err := yamlNode(item.Value)
		if err != nil {
			return nil, err
		}
		var key *ir.Node
		switch k := item.Key.(type) {
		case string:
			key = ir.FromString(k)
			strKeys++
		case int:
			key = ir.FromInt(int64(k))
			intKeys++
		case int64:
			key = ir.FromInt(k)
			intKeys++
		case uint64:
			if k > math.MaxInt64 {
				return nil, fmt.Errorf("integer key %d out of range", k)
			}
			key = ir.FromInt(int64(k))
			intKeys++
		default:
			return nil, fmt.Errorf("unsupported key %v of type %T", item.Key, item.Key)
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	if intKeys > 0 && strKeys > 0 {
		return nil, fmt.Errorf("object mixes string and integer keys")
	}
	return ir.FromKeyVals(kvs), nil
}
