// Package ustr builds text backward and stores short single-byte strings.
//
// # Builder
//
// Builder wraps a reverse region so every append lands in front of the existing text.
// Integer formatting produces the least significant digit first and prepends it, so
// no digit reversal pass is needed. A Builder can own growing storage (NewBuilder) or
// work inside a caller scratch buffer (NewBuilderOn).
//
// # String
//
// String holds ISO-8859-1 text. Up to InlineCap bytes are stored inside the value;
// longer text lives in a power-of-two block. The wire form (Encode, Decode) is a
// uvarint byte length followed by the Latin-1 bytes.
//
// Neither type is thread-safe.
package ustr
