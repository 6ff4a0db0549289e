package ustr

import "errors"

var (
	// ErrNotLatin1 indicates text with runes outside ISO-8859-1.
	ErrNotLatin1 = errors.New("ustr: text not representable in ISO-8859-1")

	// ErrTruncated indicates an encoded string shorter than its length prefix.
	ErrTruncated = errors.New("ustr: truncated encoding")

	// ErrBase indicates an unsupported integer base.
	ErrBase = errors.New("ustr: base must be between 2 and 16")
)
