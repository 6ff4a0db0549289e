// Package block provides the raw memory service used by regions and arrays.
//
// # Overview
//
// A Block is a contiguous byte range obtained from an Allocator together with the
// hook that gives it back. Regions never call make or mmap directly; they ask an
// Allocator for a Block and call Block.Release when the data has been migrated.
//
// # Implementations
//
//   - Heap: blocks from the Go heap, released by dropping the reference
//   - Mmap: anonymous private mappings (x/sys/unix), heap fallback elsewhere
//   - Budget: wraps another Allocator and fails with ErrOutOfMemory once a byte
//     budget is exhausted; also keeps in-use and peak accounting
//   - Observed: wraps another Allocator and reports every allocate/release
//
// Storage owned by the caller is wrapped with Static; releasing it only poisons the
// Block.
//
// # Thread Safety
//
// Heap and Mmap are stateless and safe for concurrent use. Budget and Observed are
// not; callers must synchronize access externally.
package block
