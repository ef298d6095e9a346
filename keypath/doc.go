// Package keypath models path expressions for the pathy resolver.
//
// A path is an ordered sequence of segments, each one of:
//
//   - a key (object field name, or an integer index)
//   - a range selector ("[1:3]", or the select-all "[*]")
//   - the recursive-descent wildcard ("..")
//
// Paths can be parsed from text:
//
//	p, err := keypath.Parse("$.things[1:].name")
//
// or built programmatically:
//
//	p := keypath.Field("things").Then(keypath.From(1)).Then(keypath.Field("name"))
//
// Both forms are equivalent; a one-segment path behaves exactly like the
// underlying container's native lookup when resolved.
//
// # Related Packages
//
//   - github.com/abarnert/pathy - Resolves paths against ir.Node trees
package keypath
