package pathy

import (
	"github.com/abarnert/pathy/debug"
	"github.com/abarnert/pathy/ir"
	"github.com/abarnert/pathy/keypath"
)

// descend implements the recursive-descent wildcard: match rest at this
// level, or one level deeper into every child, recursively. The union over
// all depths is returned in order, duplicates preserved: the same value
// can legitimately be reached at several depths.
func descend(node *ir.Node, rest *keypath.Path) ([]*ir.Node, error) {
	if debug.Descend() {
		debug.Logf("descend %s at %s\n", rest, node.Path())
	}
	if node.Type.IsLeaf() {
		// nothing to descend into; the value itself matches only an
		// exhausted continuation
		if rest == nil {
			return []*ir.Node{node.Clone()}, nil
		}
		return nil, nil
	}
	children := node.Values
	if rest == nil {
		// a trailing wildcard selects the immediate children only
		return cloneAll(children), nil
	}
	if len(children) == 0 {
		return nil, nil
	}
	// zero additional levels: rest applies right at the child level
	here, err := broadcast(children, rest, rest.Spreads())
	if err != nil {
		return nil, err
	}
	// one more level: re-apply the wildcard inside every child; each
	// per-child result is a sequence, so this broadcast always flattens
	deeper, err := broadcast(children, keypath.Wildcard().Then(rest), true)
	if err != nil {
		return nil, err
	}
	return append(here, deeper...), nil
}
