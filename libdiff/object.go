package libdiff

import (
	"github.com/abarnert/pathy/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffObject diffs two object nodes field by field. Field sequences
// are mapped to runes and run through diffmatchpatch to align common
// runs; a field that only moved position shows up as a delete and an
// insert of the same rune, which are paired back up and recursed
// through df. The result maps changed field names to descriptions, nil
// when nothing changed.
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	resMap := map[string]*ir.Node{}
	delVals := map[string]*ir.Node{}
	insVals := map[string]*ir.Node{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				delVals[runeMap[r]] = from.Values[fi]
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				fRes := df(from.Values[fi], to.Values[ti])
				if fRes != nil {
					resMap[runeMap[r]] = fRes
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				insVals[runeMap[r]] = to.Values[ti]
				ti++
			}
		}
	}
	for name, fv := range delVals {
		tv, ok := insVals[name]
		if !ok {
			resMap[name] = MakeDiff(fv, nil)
			continue
		}
		delete(insVals, name)
		if fRes := df(fv, tv); fRes != nil {
			resMap[name] = fRes
		}
	}
	for name, tv := range insVals {
		resMap[name] = MakeDiff(nil, tv)
	}
	if len(resMap) == 0 {
		return nil
	}
	return ir.FromMap(resMap)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].ParentField
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
