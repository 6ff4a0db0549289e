//go:build !unix

package block

// Mmap falls back to heap blocks where anonymous mappings are not available.
type Mmap struct{}

// Allocate returns a zeroed heap block of size bytes.
func (Mmap) Allocate(size int) (*Block, error) {
	return Heap{}.Allocate(size)
}
