// Package gomap converts between plain Go values and IR trees.
//
// # Usage
//
//	node, err := gomap.From(map[string]any{"name": "cat", "ids": []any{1, 2}})
//	v, err := gomap.To(node)
//
// From handles scalars, slices, string and integer keyed maps, and
// falls back to the JSON encoding for struct types. To produces the
// inverse shapes; Go maps carry no order, so object field order is
// sorted on From and dropped on To. Decode directly when order
// matters.
//
// # Related Packages
//
//   - github.com/abarnert/pathy/ir - IR representation
//   - github.com/abarnert/pathy/decode - Parse documents with order kept
package gomap
