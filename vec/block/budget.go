package block

import "fmt"

// Stats holds allocation accounting for a Budget.
type Stats struct {
	Allocs   int // Successful Allocate calls
	Failures int // Allocate calls rejected by the budget or the upstream allocator
	Releases int // Blocks given back
	InUse    int // Bytes currently allocated
	Peak     int // High-water mark of InUse
}

// Budget wraps an upstream Allocator with a byte limit. Once InUse+size would exceed
// Limit, Allocate fails with ErrOutOfMemory and the upstream is not consulted.
// It is the way tests simulate allocator exhaustion.
//
// NOT thread-safe.
type Budget struct {
	upstream Allocator
	limit    int
	stats    Stats
}

// NewBudget creates a Budget over upstream. A nil upstream means Heap.
func NewBudget(upstream Allocator, limit int) *Budget {
	if upstream == nil {
		upstream = Heap{}
	}
	return &Budget{upstream: upstream, limit: limit}
}

// Allocate returns a block from the upstream allocator if the budget allows it.
func (b *Budget) Allocate(size int) (*Block, error) {
	if err := checkSize(size); err != nil {
		b.stats.Failures++
		return nil, err
	}
	if size > b.limit-b.stats.InUse {
		b.stats.Failures++
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrOutOfMemory, size, b.stats.InUse, b.limit)
	}

	inner, err := b.upstream.Allocate(size)
	if err != nil {
		b.stats.Failures++
		return nil, err
	}

	b.stats.Allocs++
	b.stats.InUse += size
	if b.stats.InUse > b.stats.Peak {
		b.stats.Peak = b.stats.InUse
	}

	return New(inner.Bytes(), func([]byte) error {
		b.stats.Releases++
		b.stats.InUse -= size
		return inner.Release()
	}), nil
}

// SetLimit changes the byte budget. Lowering it below InUse makes every further
// Allocate fail until enough blocks are released.
func (b *Budget) SetLimit(limit int) { b.limit = limit }

// Limit returns the byte budget.
func (b *Budget) Limit() int { return b.limit }

// Stats returns a snapshot of the accounting counters.
func (b *Budget) Stats() Stats { return b.stats }
