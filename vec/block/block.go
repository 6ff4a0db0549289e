package block

import "fmt"

// maxBlockSize bounds a single allocation. Requests above it are reported as
// ErrOutOfMemory instead of reaching the runtime, where they would be fatal.
const maxBlockSize = 1 << 40

// Block is a contiguous byte range plus the hook that returns it to its allocator.
type Block struct {
	data    []byte
	release func([]byte) error
	owned   bool
	freed   bool
}

// Allocator hands out blocks. Allocate must not return a partially usable block:
// it either succeeds with len(Bytes()) == size or returns an error wrapping
// ErrOutOfMemory.
type Allocator interface {
	Allocate(size int) (*Block, error)
}

// New builds a Block around data. release is called once by Block.Release and may be nil.
func New(data []byte, release func([]byte) error) *Block {
	return &Block{data: data, release: release, owned: true}
}

// Static wraps caller-owned storage. Releasing a static block never frees buf.
func Static(buf []byte) *Block {
	return &Block{data: buf}
}

// Bytes returns the block contents, or nil after Release.
func (b *Block) Bytes() []byte {
	if b == nil || b.freed {
		return nil
	}
	return b.data
}

// Len returns the block size in bytes.
func (b *Block) Len() int {
	if b == nil || b.freed {
		return 0
	}
	return len(b.data)
}

// Owned reports whether releasing the block gives memory back to an allocator.
func (b *Block) Owned() bool {
	return b != nil && b.owned
}

// Released reports whether Release has been called.
func (b *Block) Released() bool {
	return b != nil && b.freed
}

// Release returns the block to its allocator. The block is unusable afterwards.
func (b *Block) Release() error {
	if b == nil {
		return nil
	}
	if b.freed {
		return ErrReleased
	}
	b.freed = true
	data := b.data
	b.data = nil
	if b.release == nil {
		return nil
	}
	return b.release(data)
}

func checkSize(size int) error {
	if size < 0 {
		return ErrNegativeSize
	}
	if size > maxBlockSize {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte block limit", ErrOutOfMemory, size, maxBlockSize)
	}
	return nil
}

// Heap allocates blocks from the Go heap.
type Heap struct{}

// Allocate returns a zeroed block of size bytes.
func (Heap) Allocate(size int) (*Block, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return New(make([]byte, size), nil), nil
}

var (
	_ Allocator = Heap{}
	_ Allocator = Mmap{}
	_ Allocator = (*Budget)(nil)
	_ Allocator = (*Observed)(nil)
)
