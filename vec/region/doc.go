// Package region implements resizable contiguous byte regions with pluggable growth.
//
// # Overview
//
// A Region owns one block.Block and three byte offsets into it: begin, end and
// capacity-end. The live data is the range between begin and end; the allocated range
// runs from begin to capacity-end. Elements have a fixed size chosen at construction.
//
// # Direction
//
// Forward regions keep begin at offset 0 and push toward higher offsets. Reverse regions
// keep begin at the end of the block and push toward offset 0, which is how strings and
// stacks are built backward. Both share one layout; every distance and step goes through
// Direction.Distance and Direction.Step.
//
//	Forward:  [begin ........ end ____________ capEnd]
//	Reverse:  [capEnd ____________ end ........ begin]
//
// Element i (in push order) sits i elements away from begin in the growth direction.
//
// # Strategies
//
// Growth and copying are delegated to a Strategy bound once per region:
//
//   - Bump: never reallocates; fails with ErrCapacityExceeded (caller-owned storage)
//   - Geometric: reallocates to ceil((used+n)*Num/Den) rounded up to a word (default 3/2)
//   - Pow2: reallocates to a power-of-two element count (used by vec/array)
//
// Custom strategies embed Base for the direction math and implement Reserve on top of
// Region.Relocate.
//
// # Invalidation
//
// Any call that may relocate (Grow, Reserve, Insert, Relocate) invalidates every Span
// and every slice obtained from At or Bytes before the call. Re-fetch after growing.
//
// # Errors
//
// Failed operations leave the region exactly as it was. After Release every mutator
// returns ErrReleased and every accessor reports an empty region.
//
// # Thread Safety
//
// Region is NOT thread-safe. Callers serialize all access.
package region
