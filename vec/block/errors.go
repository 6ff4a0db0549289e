package block

import "errors"

var (
	// ErrOutOfMemory indicates the allocator could not provide a block of the requested size.
	ErrOutOfMemory = errors.New("block: out of memory")

	// ErrNegativeSize indicates a negative allocation size.
	ErrNegativeSize = errors.New("block: negative size")

	// ErrReleased indicates a block was released twice.
	ErrReleased = errors.New("block: already released")
)
