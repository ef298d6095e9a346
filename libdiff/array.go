package libdiff

import (
	"github.com/abarnert/pathy/encode"
	"github.com/abarnert/pathy/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArray diffs two array nodes positionally. Elements are keyed by
// their wire encoding and mapped to runes, so diffmatchpatch finds the
// common subsequence. The result is an array of change descriptions
// carrying the element index on each side, nil when nothing changed.
func DiffArray(from, to *ir.Node, df DiffFunc) *ir.Node {
	elemMap := map[string]rune{}
	fromRunes := mapElemsTo(elemMap, from)
	toRunes := mapElemsTo(elemMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var ops []*ir.Node
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				ops = append(ops, atOp(fi, MakeDiff(from.Values[fi], nil)))
				fi++
			}
		case diffpatch.DiffEqual:
			// equal runes are equal wire encodings, nothing to recurse into
			fi += len([]rune(diff.Text))
			ti += len([]rune(diff.Text))
		case diffpatch.DiffInsert:
			for range diff.Text {
				ops = append(ops, atOp(ti, MakeDiff(nil, to.Values[ti])))
				ti++
			}
		}
	}
	if len(ops) == 0 {
		return nil
	}
	return ir.FromSlice(ops)
}

func atOp(index int, change *ir.Node) *ir.Node {
	kvs := []ir.KeyVal{
		{Key: ir.FromString(AtField), Val: ir.FromInt(int64(index))},
	}
	kvs = append(kvs, changeKeyVals(change)...)
	return ir.FromKeyVals(kvs)
}

func changeKeyVals(change *ir.Node) []ir.KeyVal {
	kvs := make([]ir.KeyVal, len(change.Fields))
	for i := range change.Fields {
		kvs[i] = ir.KeyVal{Key: change.Fields[i], Val: change.Values[i]}
	}
	return kvs
}

func mapElemsTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		enc := encode.MustString(v, encode.EncodeWire(true))
		r, ok := m[enc]
		if !ok {
			r = rune(len(m))
			m[enc] = r
		}
		rs[i] = r
	}
	return rs
}
