//go:build unix

package block

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap allocates blocks as anonymous private mappings. Every block is page backed
// and zeroed by the kernel; Release unmaps it.
type Mmap struct{}

// Allocate maps size bytes of anonymous memory.
func (Mmap) Allocate(size int) (*Block, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if size == 0 {
		return New([]byte{}, nil), nil
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) {
			return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrOutOfMemory, size, err)
		}
		return nil, fmt.Errorf("block: mmap %d bytes: %w", size, err)
	}
	return New(data, munmap), nil
}

func munmap(data []byte) error {
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
