// Package encode encodes IR nodes to text.
//
// # Usage
//
//	// Encode to indented JSON (the default)
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//	err := encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/abarnert/pathy/ir - IR representation
//   - github.com/abarnert/pathy/decode - Parse text to IR
package encode
