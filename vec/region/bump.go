package region

import "fmt"

// Bump is the bump-in-place strategy. It hands out the storage the region already
// has and never reallocates.
type Bump struct {
	Base
}

var _ Strategy = Bump{}

// Reserve succeeds only when n bytes are already free.
func (Bump) Reserve(r *Region, n int) error {
	if r.released {
		return ErrReleased
	}
	if n < 0 {
		return fmt.Errorf("%w: reserve %d bytes", ErrInvalidRange, n)
	}
	if free := r.free(); n > free {
		return fmt.Errorf("%w: need %d bytes, %d free", ErrCapacityExceeded, n, free)
	}
	return nil
}
