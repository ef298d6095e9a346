package pathy

import (
	"github.com/abarnert/pathy/debug"
	"github.com/abarnert/pathy/ir"
	"github.com/abarnert/pathy/keypath"
)

// broadcast applies rest independently to every element, in order. An
// element whose resolution fails with a lookup or shape error contributes
// nothing; partial structural absence along one branch never aborts the
// query. When flatten is set each per-element result is a sequence (the
// continuation guarantees it) and its items are merged into the output
// individually; otherwise each result is one output item.
func broadcast(elems []*ir.Node, rest *keypath.Path, flatten bool) ([]*ir.Node, error) {
	var res []*ir.Node
	for _, elem := range elems {
		sub, err := Resolve(elem, rest)
		if err != nil {
			if skippable(err) {
				if debug.Broadcast() {
					debug.Logf("broadcast: skip %s: %v\n", elem.Path(), err)
				}
				continue
			}
			return nil, err
		}
		if !flatten {
			res = append(res, sub)
			continue
		}
		if sub.Type == ir.ArrayType {
			res = append(res, sub.Values...)
			continue
		}
		res = append(res, sub)
	}
	return res, nil
}
