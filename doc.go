// Package pathy resolves path expressions against nested heterogeneous
// values: trees of scalars, ordered collections and associative
// collections, as decoded from JSON or YAML documents.
//
// A path is a sequence of segments. Key segments (object fields, array
// indices, integer keys) behave like chained native lookups, and a
// missing key on that direct spine surfaces as a *LookupError or
// *ShapeError. Range segments ([1:3], [*]) and the recursive-descent
// wildcard (..) select many values at once; the remaining path is then
// applied to every selected value independently, and elements that lack
// the queried structure are silently dropped instead of failing the
// whole query.
//
// # Usage
//
//	node, err := decode.Decode(data)
//	names, err := pathy.Get(node, "$.things[*].name")
//	props, err := pathy.Get(node, "$..properties")
//
//	// or with built paths
//	p := keypath.Field("things").Then(keypath.Index(1)).Then(keypath.Field("id"))
//	id, err := pathy.Resolve(node, p)
//
// Resolution never mutates its input and returns fresh trees, so
// concurrent queries over a shared value need no coordination.
//
// # Related Packages
//
//   - github.com/abarnert/pathy/keypath - Path representation and syntax
//   - github.com/abarnert/pathy/ir - The nested value representation
//   - github.com/abarnert/pathy/decode - Decode documents into values
//   - github.com/abarnert/pathy/encode - Render results
package pathy
