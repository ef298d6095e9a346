// Package format names the serialization formats pathy can read and write.
//
// # Related Packages
//
//   - github.com/abarnert/pathy/decode - Decode text to IR
//   - github.com/abarnert/pathy/encode - Encode IR to text
package format
