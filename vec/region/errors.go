package region

import (
	"errors"

	"github.com/joshuapare/pivkit/internal/sizemath"
	"github.com/joshuapare/pivkit/vec/block"
)

var (
	// ErrOutOfMemory indicates the block allocator could not satisfy a reserve.
	ErrOutOfMemory = block.ErrOutOfMemory

	// ErrCapacityExceeded indicates a non-reallocating strategy ran out of room.
	ErrCapacityExceeded = errors.New("region: capacity exceeded")

	// ErrInvalidRange indicates an offset or count outside the live range.
	ErrInvalidRange = errors.New("region: invalid range")

	// ErrOverflow indicates a size computation is not representable.
	ErrOverflow = sizemath.ErrOverflow

	// ErrReleased indicates use of a region after Release.
	ErrReleased = errors.New("region: use after release")
)
