// Package libdiff computes structural diffs of IR trees.
//
// # Usage
//
//	// Compute diff between two nodes; nil means equal
//	d := libdiff.Diff(oldNode, newNode)
//
//	// Match array elements on an "id" field instead of position
//	d, err := libdiff.DiffArrayByKey(oldArr, newArr, "id", libdiff.Diff)
//
// A diff is itself an IR node, so it encodes and queries like any
// other value. Replacements carry the old value under "-" and the new
// one under "+"; array changes carry the element index under "at".
//
// # Related Packages
//
//   - github.com/abarnert/pathy/ir - IR representation
//   - github.com/abarnert/pathy/encode - Encode diffs for display
package libdiff
