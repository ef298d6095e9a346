package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abarnert/pathy/ir"
)

// decodeJSON walks the token stream directly rather than unmarshalling
// into map[string]any, so object field order survives.
func decodeJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after top level value")
	}
	return node, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonNode(dec, tok)
}

func jsonNode(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v.String())
	case string:
		return ir.FromString(v), nil
	case bool:
		return ir.FromBool(v), nil
	case json.Number:
		return numberNode(v.String()), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	var kvs []ir.KeyVal
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return ir.FromKeyVals(kvs), nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
	}
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	var elems []*ir.Node
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return ir.FromSlice(elems), nil
		}
		elem, err := jsonNode(dec, tok)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

// numberNode keeps the source text alongside the parsed Int64 or
// Float64 so nothing is lost for out-of-range literals.
func numberNode(text string) *ir.Node {
	node := &ir.Node{Type: ir.NumberType, Number: text}
	n := json.Number(text)
	if i, err := n.Int64(); err == nil {
		node.Int64 = &i
		return node
	}
	if f, err := n.Float64(); err == nil {
		node.Float64 = &f
	}
	return node
}
