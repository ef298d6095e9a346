// Package ir provides the intermediate representation (IR) for nested values.
//
// # Overview
//
// The IR package defines the tree representation that the pathy resolver
// queries. All nested values (whether decoded from JSON or YAML, or built
// programmatically) are represented as ir.Node trees.
//
// # Node Structure
//
// A Node represents a single value. Nodes are a closed tagged union; the
// Type field says which of the fields carries the value:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64, string fallback)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// Strings are scalars. A string node is never treated as an ordered
// collection of its characters; Type.IsLeaf reflects that.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Field order is
// the object's definition order: a select-all query over an object yields
// its values in exactly this order.
//
// Fields are always either:
//   - String typed - normal object keys
//   - Int typed - for int-keyed maps
//
// Objects must either have all keys int typed, or all keys string typed
// (mixed int/string keys are not allowed).
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither Int64 nor Float64 can represent it
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: field name if parent is object
//
// Use Path() to get a $-rooted location string for diagnostics:
//
//	path := node.Path() // e.g., "$.foo.bar[0]"
//
// Path addressing and multi-match resolution live in the root pathy package
// and github.com/abarnert/pathy/keypath; this package only models the data.
//
// # Comparison
//
// Nodes can be compared for equality and ordering:
//
//	equal := ir.Compare(a, b) == 0
//
// # JSON Interoperability
//
// The IR itself is representable in JSON:
//
//	jsonBytes, err := ir.ToJSON(node)
//	node, err := ir.FromJSON(jsonBytes)
//
// # Thread Safety
//
// Node structures are not thread-safe for mutation. The resolver never
// mutates the trees it is given, so sharing immutable trees across
// goroutines is fine.
//
// # Related Packages
//
//   - github.com/abarnert/pathy - Path resolution over IR nodes
//   - github.com/abarnert/pathy/decode - Decodes text into IR nodes
//   - github.com/abarnert/pathy/encode - Encodes IR nodes to text
//   - github.com/abarnert/pathy/gomap - Converts Go values to/from IR nodes
package ir
