package libdiff

import (
	"github.com/abarnert/pathy/ir"
)

// Reserved fields in diff description nodes.
const (
	OldField     = "-"
	NewField     = "+"
	AtField      = "at"
	ChangesField = "~"
)

// DiffFunc computes the diff of two nodes, nil when they are equal.
type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff computes a structural diff of two IR trees. The result is an IR
// node describing the changes, or nil when the trees are equal.
// Objects diff field by field, arrays element by element; everything
// else is a replacement.
func Diff(from, to *ir.Node) *ir.Node {
	switch {
	case from.Type == ir.ObjectType && to.Type == ir.ObjectType:
		return DiffObject(from, to, Diff)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		return DiffArray(from, to, Diff)
	default:
		if ir.Compare(from, to) == 0 {
			return nil
		}
		return MakeDiff(from, to)
	}
}

// MakeDiff builds a replacement description. A nil from is an insert, a
// nil to is a delete.
func MakeDiff(from, to *ir.Node) *ir.Node {
	var kvs []ir.KeyVal
	if from != nil {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(OldField), Val: from.Clone()})
	}
	if to != nil {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(NewField), Val: to.Clone()})
	}
	return ir.FromKeyVals(kvs)
}
