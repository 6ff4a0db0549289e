// Package array implements a partitioned array: a region whose capacity is always a
// power-of-two number of elements, grown by reserving partitions.
//
// # Overview
//
// An Array has a fixed boundary (zero) and an open end (nth). Partback reserves n
// elements at the open end; Inspart opens n elements at any offset of the live data.
// When the capacity is too small both grow to the smallest power of two that holds
// the result, copying the live data in order with the new partition already in place.
//
//	a, _ := array.New(4)
//	sp, err := a.Partback(3)
//	if err != nil {
//	    return err
//	}
//	// fill sp.Bytes() with three 4-byte elements
//
// Arrays grow in the Reverse direction by default, matching how the rest of the
// vec packages build data backward. Use WithDirection(region.Forward) for the
// conventional layout.
//
// Spans returned by Partback and Inspart are invalidated by the next growing call.
//
// NOT thread-safe.
package array
