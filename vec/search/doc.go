// Package search implements binary and linear search over fixed-size elements.
//
// Both searches work on any Sequence (region.Region and array.Array satisfy it) with
// a caller comparator over opaque element bytes. Elements must be sorted ascending in
// index order under that comparator.
//
// Binary narrows the range by bisection until at most ResidualWindow elements remain
// and returns that window. It does not finish the job: callers run Linear (or use
// Find, which does both) over the residual window.
//
//	w, err := search.Binary(key, arr, search.Int32LE)
//	if err != nil {
//	    return err
//	}
//	i, found, err := search.Find(key, arr, search.Int32LE)
package search
