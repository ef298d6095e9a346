// Package decode parses JSON and YAML documents into IR trees.
//
// # Usage
//
//	// Sniff the format: JSON first, then YAML
//	node, err := decode.Decode(data)
//
//	// Or pin it
//	node, err := decode.Decode(data, decode.DecodeFormat(format.YAMLFormat))
//
// Decoded objects keep the field order of the source document. YAML
// mappings with integer keys become int-keyed objects.
//
// # Related Packages
//
//   - github.com/abarnert/pathy/ir - IR representation
//   - github.com/abarnert/pathy/encode - Encode IR to text
package decode
