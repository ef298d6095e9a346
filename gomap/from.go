package gomap

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/abarnert/pathy/decode"
	"github.com/abarnert/pathy/ir"
)

// From converts a Go value to an IR node. Scalars, slices and maps
// convert directly; anything else (structs in particular) goes through
// its JSON encoding, so json struct tags apply.
func From(v any) (*ir.Node, error) {
	return from(v, "")
}

func from(v any, path string) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return t.Clone(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int8:
		return ir.FromInt(int64(t)), nil
	case int16:
		return ir.FromInt(int64(t)), nil
	case int32:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint:
		return fromUint(uint64(t), path)
	case uint8:
		return ir.FromInt(int64(t)), nil
	case uint16:
		return ir.FromInt(int64(t)), nil
	case uint32:
		return ir.FromInt(int64(t)), nil
	case uint64:
		return fromUint(t, path)
	case float32:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, &ConvertError{FieldPath: path, Message: fmt.Sprintf("bad number %q", t), Err: err}
		}
		return ir.FromFloat(f), nil
	case []any:
		elems := make([]*ir.Node, len(t))
		for i, e := range t {
			node, err := from(e, childPath(path, fmt.Sprintf("%d", i)))
			if err != nil {
				return nil, err
			}
			elems[i] = node
		}
		return ir.FromSlice(elems), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(t))
		for k, e := range t {
			node, err := from(e, childPath(path, k))
			if err != nil {
				return nil, err
			}
			m[k] = node
		}
		return ir.FromMap(m), nil
	case map[int64]any:
		m := make(map[int64]*ir.Node, len(t))
		for k, e := range t {
			node, err := from(e, childPath(path, fmt.Sprintf("%d", k)))
			if err != nil {
				return nil, err
			}
			m[k] = node
		}
		return ir.FromIntKeysMap(m), nil
	}
	return fromReflect(reflect.ValueOf(v), path)
}

func fromUint(u uint64, path string) (*ir.Node, error) {
	if u > math.MaxInt64 {
		return nil, &ConvertError{FieldPath: path, Message: fmt.Sprintf("%d overflows int64", u)}
	}
	return ir.FromInt(int64(u)), nil
}

func fromReflect(rv reflect.Value, path string) (*ir.Node, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		return from(rv.Elem().Interface(), path)
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		elems := make([]*ir.Node, n)
		for i := 0; i < n; i++ {
			node, err := from(rv.Index(i).Interface(), childPath(path, fmt.Sprintf("%d", i)))
			if err != nil {
				return nil, err
			}
			elems[i] = node
		}
		return ir.FromSlice(elems), nil
	case reflect.Map:
		return fromMap(rv, path)
	case reflect.Struct:
		return fromJSON(rv.Interface(), path)
	}
	return nil, &ConvertError{
		FieldPath: path,
		Message:   fmt.Sprintf("cannot convert %s value", rv.Kind()),
	}
}

func fromMap(rv reflect.Value, path string) (*ir.Node, error) {
	keyKind := rv.Type().Key().Kind()
	switch {
	case keyKind == reflect.String:
		m := make(map[string]*ir.Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			node, err := from(iter.Value().Interface(), childPath(path, k))
			if err != nil {
				return nil, err
			}
			m[k] = node
		}
		return ir.FromMap(m), nil
	case keyKind >= reflect.Int && keyKind <= reflect.Int64:
		m := make(map[int64]*ir.Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().Int()
			node, err := from(iter.Value().Interface(), childPath(path, fmt.Sprintf("%d", k)))
			if err != nil {
				return nil, err
			}
			m[k] = node
		}
		return ir.FromIntKeysMap(m), nil
	}
	return nil, &ConvertError{
		FieldPath: path,
		Message:   fmt.Sprintf("unsupported map key kind %s", keyKind),
	}
}

func fromJSON(v any, path string) (*ir.Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, &ConvertError{FieldPath: path, Message: "not json encodable", Err: err}
	}
	node, err := decode.Decode(d)
	if err != nil {
		return nil, &ConvertError{FieldPath: path, Message: "bad json encoding", Err: err}
	}
	return node, nil
}

func childPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
