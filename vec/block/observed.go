package block

// Observed wraps an upstream Allocator and reports every allocation and release to
// its hooks. Either hook may be nil.
type Observed struct {
	Upstream   Allocator
	OnAllocate func(size int, err error)
	OnRelease  func(size int)
}

// Allocate forwards to the upstream allocator (Heap when nil) and reports the result.
func (o *Observed) Allocate(size int) (*Block, error) {
	up := o.Upstream
	if up == nil {
		up = Heap{}
	}
	inner, err := up.Allocate(size)
	if o.OnAllocate != nil {
		o.OnAllocate(size, err)
	}
	if err != nil {
		return nil, err
	}
	return New(inner.Bytes(), func([]byte) error {
		if o.OnRelease != nil {
			o.OnRelease(size)
		}
		return inner.Release()
	}), nil
}
