package array

import (
	"errors"

	"github.com/joshuapare/pivkit/vec/region"
)

var (
	// ErrElemSize indicates a non-positive element size.
	ErrElemSize = errors.New("array: element size must be positive")

	// ErrInvalidRange indicates an offset or count outside the live elements.
	ErrInvalidRange = region.ErrInvalidRange

	// ErrOutOfMemory indicates the block allocator could not satisfy a partition.
	ErrOutOfMemory = region.ErrOutOfMemory

	// ErrOverflow indicates the required capacity is not representable.
	ErrOverflow = region.ErrOverflow

	// ErrReleased indicates use of an array after Release.
	ErrReleased = region.ErrReleased
)
