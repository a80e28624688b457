// Package generation turns gift card inputs into provider calls and
// normalizes the replies into the canonical copy and image shapes.
//
// The provider is only asked, in natural language, to respect the copy
// shape. The normalization in this package is what actually enforces it:
// strings are trimmed, lists are capped, and missing keys become empty
// values. A reply that is not a JSON object is rejected as a whole.
package generation
