package pathy

import (
	"strings"

	"github.com/abarnert/pathy/debug"
	"github.com/abarnert/pathy/ir"
	"github.com/abarnert/pathy/keypath"
)

// Resolve matches a path against a nested value and returns the result.
//
// An empty (nil) path returns the value itself. A path whose segments are
// all keys behaves like chained native lookups: the first missing key or
// capability mismatch surfaces as a *LookupError or *ShapeError. Range and
// wildcard segments select multiple values; the remaining path is then
// applied to every selected value independently, and per-element failures
// are dropped from the result instead of failing the query. Only a failure
// on the direct, non-broadcast spine of the call propagates.
//
// Results are fresh trees: Resolve never mutates node and shares no
// substructure with it, so concurrent calls over a shared tree are safe.
func Resolve(node *ir.Node, p *keypath.Path) (*ir.Node, error) {
	if debug.Resolve() {
		debug.Logf("resolve %s at %s\n", p, node.Path())
	}
	if p == nil {
		return node.Clone(), nil
	}
	rest := p.Next
	// Flattening is decided by what remains after the current segment: a
	// range or wildcard anywhere in the continuation forces every
	// downstream broadcast to merge its per-element sequences.
	flatten := rest.Spreads()
	switch {
	case p.All || p.Range != nil:
		elems, err := selectRange(node, p)
		if err != nil {
			return nil, err
		}
		if rest == nil {
			return ir.FromSlice(cloneAll(elems)), nil
		}
		res, err := broadcast(elems, rest, flatten)
		if err != nil {
			return nil, err
		}
		return ir.FromSlice(res), nil
	case p.Subtree:
		res, err := descend(node, rest)
		if err != nil {
			return nil, err
		}
		return ir.FromSlice(res), nil
	default:
		child, err := lookup(node, p)
		if err != nil {
			return nil, err
		}
		if rest == nil {
			return child.Clone(), nil
		}
		return Resolve(child, rest)
	}
}

// Get parses expr as a path expression and resolves it against node.
func Get(node *ir.Node, expr string) (*ir.Node, error) {
	p, err := keypath.Parse(expr)
	if err != nil {
		return nil, err
	}
	return Resolve(node, p)
}

// lookup performs the direct, single-valued access of a key segment:
// object field, array index, or int-keyed object entry.
func lookup(node *ir.Node, p *keypath.Path) (*ir.Node, error) {
	switch {
	case p.Field != nil:
		if node.Type != ir.ObjectType {
			return nil, &ShapeError{
				Path:     node.Path(),
				Segment:  segLabel(p),
				Expected: ir.ObjectType.String(),
				Actual:   node.Type.String(),
			}
		}
		child := ir.Get(node, *p.Field)
		if child == nil {
			return nil, &LookupError{
				Path:    node.Path(),
				Segment: segLabel(p),
				Message: "no field " + *p.Field,
			}
		}
		return child, nil
	default: // p.Index != nil
		switch node.Type {
		case ir.ArrayType:
			idx := *p.Index
			n := len(node.Values)
			if idx < 0 {
				idx += n
			}
			if idx < 0 || idx >= n {
				return nil, &LookupError{
					Path:    node.Path(),
					Segment: segLabel(p),
					Message: "index out of bounds",
				}
			}
			return node.Values[idx], nil
		case ir.ObjectType:
			if child := ir.GetInt(node, int64(*p.Index)); child != nil {
				return child, nil
			}
			return nil, &LookupError{
				Path:    node.Path(),
				Segment: segLabel(p),
				Message: "no entry for key",
			}
		default:
			return nil, &ShapeError{
				Path:     node.Path(),
				Segment:  segLabel(p),
				Expected: "Array or Object",
				Actual:   node.Type.String(),
			}
		}
	}
}

// selectRange computes the sub-collection a range segment selects.
// Select-all against an object yields its values in field order; bounded
// ranges apply only to arrays, with negative bounds counted from the end
// and out-of-range bounds clamped.
func selectRange(node *ir.Node, p *keypath.Path) ([]*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		if !p.All {
			return nil, &ShapeError{
				Path:     node.Path(),
				Segment:  segLabel(p),
				Expected: ir.ArrayType.String(),
				Actual:   node.Type.String(),
			}
		}
		return node.Values, nil
	case ir.ArrayType:
		if p.All {
			return node.Values, nil
		}
		lo, hi := clampRange(p.Range, len(node.Values))
		return node.Values[lo:hi], nil
	default:
		return nil, &ShapeError{
			Path:     node.Path(),
			Segment:  segLabel(p),
			Expected: "Array or Object",
			Actual:   node.Type.String(),
		}
	}
}

func clampRange(r *keypath.Range, n int) (lo, hi int) {
	lo, hi = 0, n
	if r.Start != nil {
		lo = *r.Start
		if lo < 0 {
			lo += n
		}
		lo = min(max(lo, 0), n)
	}
	if r.End != nil {
		hi = *r.End
		if hi < 0 {
			hi += n
		}
		hi = min(max(hi, 0), n)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func cloneAll(elems []*ir.Node) []*ir.Node {
	res := make([]*ir.Node, len(elems))
	for i, elem := range elems {
		res[i] = elem.Clone()
	}
	return res
}

// segLabel renders a single segment for error messages.
func segLabel(p *keypath.Path) string {
	seg := &keypath.Path{
		Field:   p.Field,
		Index:   p.Index,
		Range:   p.Range,
		All:     p.All,
		Subtree: p.Subtree,
	}
	return strings.TrimPrefix(seg.String(), "$")
}
