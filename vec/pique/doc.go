// Package pique provides typed stacks and vectors on top of region.Region.
//
// A Vec[T] stores each value in a fixed number of bytes through a Codec[T]. Push and
// Pop work at the open end, Insert shifts later elements toward it, and growth is
// delegated to the region's strategy (3/2 geometric unless configured otherwise).
//
//	v := pique.New(region.Reverse, pique.Uint32)
//	for i := range 10 {
//	    if err := v.Push(uint32(i)); err != nil {
//	        return err
//	    }
//	}
//	top, _ := v.Pop()
//
// NOT thread-safe.
package pique
