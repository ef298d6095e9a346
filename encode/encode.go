package encode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abarnert/pathy/format"
	"github.com/abarnert/pathy/ir"
)

// Encode writes the value node represents to w. The default format is
// indented JSON; see EncodeFormat, EncodeWire and EncodeColors.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = plain
	}
	bw := bufio.NewWriter(w)
	var err error
	switch es.format {
	case format.YAMLFormat:
		err = encodeYAML(bw, node, es)
	default:
		err = encodeJSON(bw, node, 0, es)
	}
	if err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

func plain(_ ir.Type, _ ColorAttr, s string) string { return s }

func encodeJSON(w *bufio.Writer, node *ir.Node, depth int, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeJSONObject(w, node, depth, es)
	case ir.ArrayType:
		return encodeJSONArray(w, node, depth, es)
	default:
		_, err := w.WriteString(es.Color(node.Type, ValueColor, scalarJSON(node)))
		return err
	}
}

func encodeJSONObject(w *bufio.Writer, node *ir.Node, depth int, es *EncState) error {
	sep := func(s string) string { return es.Color(ir.ObjectType, SepColor, s) }
	if len(node.Fields) == 0 {
		_, err := w.WriteString(sep("{}"))
		return err
	}
	if _, err := w.WriteString(sep("{")); err != nil {
		return err
	}
	for i := range node.Fields {
		if i > 0 {
			if _, err := w.WriteString(sep(",")); err != nil {
				return err
			}
		}
		if err := jsonBreak(w, depth+1, es); err != nil {
			return err
		}
		// JSON object keys are strings; int keys are quoted
		key := strconv.Quote(node.Fields[i].ParentField)
		if _, err := w.WriteString(es.Color(ir.ObjectType, FieldColor, key)); err != nil {
			return err
		}
		if _, err := w.WriteString(sep(":")); err != nil {
			return err
		}
		if !es.wire {
			if err := w.WriteByte(' '); err != nil {
				return err
			}
		}
		if err := encodeJSON(w, node.Values[i], depth+1, es); err != nil {
			return err
		}
	}
	if err := jsonBreak(w, depth, es); err != nil {
		return err
	}
	_, err := w.WriteString(sep("}"))
	return err
}

func encodeJSONArray(w *bufio.Writer, node *ir.Node, depth int, es *EncState) error {
	sep := func(s string) string { return es.Color(ir.ArrayType, SepColor, s) }
	if len(node.Values) == 0 {
		_, err := w.WriteString(sep("[]"))
		return err
	}
	if _, err := w.WriteString(sep("[")); err != nil {
		return err
	}
	for i, elt := range node.Values {
		if i > 0 {
			if _, err := w.WriteString(sep(",")); err != nil {
				return err
			}
		}
		if err := jsonBreak(w, depth+1, es); err != nil {
			return err
		}
		if err := encodeJSON(w, elt, depth+1, es); err != nil {
			return err
		}
	}
	if err := jsonBreak(w, depth, es); err != nil {
		return err
	}
	_, err := w.WriteString(sep("]"))
	return err
}

func jsonBreak(w *bufio.Writer, depth int, es *EncState) error {
	if es.wire {
		return nil
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	_, err := w.WriteString(strings.Repeat(" ", depth*es.indent))
	return err
}

func scalarJSON(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(node.Bool)
	case ir.StringType:
		return strconv.Quote(node.String)
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return strconv.FormatInt(*node.Int64, 10)
		case node.Float64 != nil:
			return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
		default:
			return node.Number
		}
	default:
		return fmt.Sprintf("<%s>", node.Type)
	}
}
