package region

import (
	"errors"
	"fmt"

	"github.com/joshuapare/pivkit/internal/buf"
	"github.com/joshuapare/pivkit/vec/block"
)

// Region is a resizable contiguous byte region. See the package documentation for the
// cursor layout.
//
// NOT thread-safe.
type Region struct {
	dir      Direction
	elemSize int
	strategy Strategy
	blk      *block.Block
	begin    int // fixed boundary: 0 (Forward) or blk.Len() (Reverse)
	end      int // open end of the live data
	capEnd   int // far edge of the allocated range
	released bool
}

// Gap describes Len bytes opened at logical byte offset Off, measured from begin in the
// growth direction.
type Gap struct {
	Off int
	Len int
}

// Option configures a Region.
type Option func(*Region)

// WithElemSize sets the element size in bytes. Values below 1 are ignored.
func WithElemSize(n int) Option {
	return func(r *Region) {
		if n > 0 {
			r.elemSize = n
		}
	}
}

// WithStrategy binds s as the growth strategy. Without it the first reserve binds a 3/2
// geometric strategy over block.Heap.
func WithStrategy(s Strategy) Option {
	return func(r *Region) {
		r.strategy = s
	}
}

// New creates an empty region with zero capacity.
func New(dir Direction, opts ...Option) *Region {
	r := &Region{dir: dir, elemSize: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFixed creates an empty region over caller storage with the Bump strategy. The
// region never grows past len(storage) and Release leaves storage untouched.
func NewFixed(dir Direction, storage []byte, elemSize int) *Region {
	r := New(dir, WithElemSize(elemSize), WithStrategy(Bump{}))
	r.adopt(block.Static(storage))
	return r
}

// adopt points the cursors at an empty layout over b.
func (r *Region) adopt(b *block.Block) {
	r.blk = b
	if r.dir == Reverse {
		r.begin, r.capEnd = b.Len(), 0
	} else {
		r.begin, r.capEnd = 0, b.Len()
	}
	r.end = r.begin
}

// Direction returns the growth direction.
func (r *Region) Direction() Direction { return r.dir }

// ElemSize returns the element size in bytes.
func (r *Region) ElemSize() int { return r.elemSize }

// Strategy returns the bound strategy, or nil before the first reserve of a region
// created without WithStrategy.
func (r *Region) Strategy() Strategy { return r.strategy }

// Block returns the backing block, nil when nothing is allocated.
func (r *Region) Block() *block.Block { return r.blk }

// Released reports whether Release has been called.
func (r *Region) Released() bool { return r.released }

// Len returns the live byte count.
func (r *Region) Len() int {
	if r.released {
		return 0
	}
	return r.dir.Distance(r.begin, r.end)
}

// Cap returns the allocated byte count.
func (r *Region) Cap() int {
	if r.released {
		return 0
	}
	return r.dir.Distance(r.begin, r.capEnd)
}

func (r *Region) free() int {
	if r.released {
		return 0
	}
	return r.dir.Distance(r.end, r.capEnd)
}

// Size returns the number of live elements.
func (r *Region) Size() int { return r.Len() / r.elemSize }

// Capacity returns the number of elements that fit without reallocating.
func (r *Region) Capacity() int { return r.Cap() / r.elemSize }

// IsEmpty reports whether the region holds no elements.
func (r *Region) IsEmpty() bool { return r.Len() == 0 }

// bind returns the strategy, binding the default one on first use.
func (r *Region) bind() Strategy {
	if r.strategy == nil {
		r.strategy = NewGeometric(block.Heap{})
	}
	return r.strategy
}

// memSpan returns the span between two cursor positions.
func (r *Region) memSpan(a, b int) Span {
	if a > b {
		a, b = b, a
	}
	return Span{blk: r.blk, Lo: a, Hi: b}
}

// logicalSpan maps the logical byte range [a, b), measured from begin in the growth
// direction, to memory.
func (r *Region) logicalSpan(a, b int) Span {
	return r.memSpan(r.dir.Step(r.begin, a), r.dir.Step(r.begin, b))
}

func (r *Region) copySpan(dst, src Span) {
	r.bind().Copy(r, dst, src)
}

func (r *Region) elemBytes(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrInvalidRange, n)
	}
	nb, err := buf.ElemBytes(n, r.elemSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return nb, nil
}

// Reserve guarantees at least n free bytes beyond the live end. It may relocate.
func (r *Region) Reserve(n int) error {
	if r.released {
		return ErrReleased
	}
	return r.bind().Reserve(r, n)
}

// Grow appends n elements at the open end and returns their span. Reallocation happens
// only when Size()+n exceeds Capacity(). On error the region is unchanged.
//
//	sp, err := r.Grow(4)
//	if err != nil {
//	    return err
//	}
//	copy(sp.Bytes(), payload)
func (r *Region) Grow(n int) (Span, error) {
	if r.released {
		return Span{}, ErrReleased
	}
	nb, err := r.elemBytes(n)
	if err != nil {
		return Span{}, err
	}
	s := r.bind()
	if nb > r.free() {
		if err := s.Reserve(r, nb); err != nil {
			return Span{}, err
		}
	}
	sp, err := s.Advance(r, nb)
	if err != nil {
		return Span{}, err
	}
	if sp.Len() != nb {
		r.end = r.dir.Step(r.end, -sp.Len())
		return Span{}, fmt.Errorf("%w: granted %d of %d bytes", ErrCapacityExceeded, sp.Len(), nb)
	}
	return sp, nil
}

// Shrink removes n elements from the open end.
func (r *Region) Shrink(n int) error {
	if r.released {
		return ErrReleased
	}
	if n < 0 || n > r.Size() {
		return fmt.Errorf("%w: shrink %d of %d elements", ErrInvalidRange, n, r.Size())
	}
	r.end = r.dir.Step(r.end, -n*r.elemSize)
	return nil
}

// Reset drops all live elements and keeps the capacity.
func (r *Region) Reset() error {
	if r.released {
		return ErrReleased
	}
	r.end = r.begin
	return nil
}

// Insert opens n zeroed elements at element offset off (0 <= off <= Size()) and returns
// their span. Elements at and after off move n places toward the open end.
func (r *Region) Insert(off, n int) (Span, error) {
	if r.released {
		return Span{}, ErrReleased
	}
	if off < 0 || off > r.Size() {
		return Span{}, fmt.Errorf("%w: insert at %d of %d elements", ErrInvalidRange, off, r.Size())
	}
	nb, err := r.elemBytes(n)
	if err != nil {
		return Span{}, err
	}
	gap := Gap{Off: off * r.elemSize, Len: nb}
	if err := r.reserveGap(gap); err != nil {
		return Span{}, err
	}
	return r.logicalSpan(gap.Off, gap.Off+gap.Len), nil
}

func (r *Region) reserveGap(gap Gap) error {
	s := r.bind()
	if gr, ok := s.(GapReserver); ok {
		return gr.ReserveGap(r, gap)
	}
	if gap.Len > r.free() {
		if err := s.Reserve(r, gap.Len); err != nil {
			return err
		}
	}
	return r.openGap(gap)
}

func (r *Region) checkGap(gap Gap) error {
	if gap.Off < 0 || gap.Off > r.Len() || gap.Len < 0 {
		return fmt.Errorf("%w: gap %d+%d in %d live bytes", ErrInvalidRange, gap.Off, gap.Len, r.Len())
	}
	return nil
}

// openGap moves the tail in place to open gap. The block must have gap.Len free bytes.
func (r *Region) openGap(gap Gap) error {
	if err := r.checkGap(gap); err != nil {
		return err
	}
	if gap.Len > r.free() {
		return fmt.Errorf("%w: gap of %d bytes, %d free", ErrCapacityExceeded, gap.Len, r.free())
	}
	if gap.Len == 0 {
		return nil
	}
	used := r.Len()
	r.end = r.dir.Step(r.end, gap.Len)
	if gap.Off < used {
		r.copySpan(r.logicalSpan(gap.Off+gap.Len, used+gap.Len), r.logicalSpan(gap.Off, used))
	}
	clear(r.logicalSpan(gap.Off, gap.Off+gap.Len).Bytes())
	return nil
}

// Remove closes n elements at element offset off. Elements after the removed range move
// n places toward begin. Capacity is kept.
func (r *Region) Remove(off, n int) error {
	if r.released {
		return ErrReleased
	}
	if off < 0 || n < 0 || n > r.Size()-off {
		return fmt.Errorf("%w: remove %d at %d of %d elements", ErrInvalidRange, n, off, r.Size())
	}
	if n == 0 {
		return nil
	}
	used := r.Len()
	lo, nb := off*r.elemSize, n*r.elemSize
	if lo+nb < used {
		r.copySpan(r.logicalSpan(lo, used-nb), r.logicalSpan(lo+nb, used))
	}
	r.end = r.dir.Step(r.end, -nb)
	return nil
}

// At returns element i in push order, or nil when i is out of range.
// The slice aliases the region and is invalidated by relocation.
func (r *Region) At(i int) []byte {
	if i < 0 || i >= r.Size() {
		return nil
	}
	return r.logicalSpan(i*r.elemSize, (i+1)*r.elemSize).Bytes()
}

// Live returns the span of the live data.
func (r *Region) Live() Span {
	if r.released {
		return Span{}
	}
	return r.memSpan(r.begin, r.end)
}

// Bytes returns the live bytes in memory order. For a reverse region that is the
// reverse of push order at element granularity.
func (r *Region) Bytes() []byte {
	return r.Live().Bytes()
}

// Relocate moves the live data into nb and releases the previous block. A non-empty
// gap opens gap.Len zeroed bytes at logical offset gap.Off that become part of the live
// data. nb must hold Len()+gap.Len bytes.
//
// On error the region still owns its previous block and nb is left to the caller.
func (r *Region) Relocate(nb *block.Block, gap Gap) error {
	if r.released {
		return ErrReleased
	}
	if nb == nil || nb == r.blk || nb.Released() {
		return fmt.Errorf("%w: relocation target", ErrInvalidRange)
	}
	if err := r.checkGap(gap); err != nil {
		return err
	}
	used := r.Len()
	need, ok := buf.AddOverflowSafe(used, gap.Len)
	if !ok {
		return fmt.Errorf("%w: %d + %d bytes", ErrOverflow, used, gap.Len)
	}
	if nb.Len() < need {
		return fmt.Errorf("%w: target holds %d of %d bytes", ErrCapacityExceeded, nb.Len(), need)
	}

	dst := &Region{dir: r.dir, elemSize: r.elemSize}
	dst.adopt(nb)
	dst.end = dst.dir.Step(dst.begin, need)

	if gap.Off > 0 {
		r.copySpan(dst.logicalSpan(0, gap.Off), r.logicalSpan(0, gap.Off))
	}
	if gap.Off < used {
		r.copySpan(dst.logicalSpan(gap.Off+gap.Len, need), r.logicalSpan(gap.Off, used))
	}
	clear(dst.logicalSpan(gap.Off, gap.Off+gap.Len).Bytes())

	old := r.blk
	r.blk, r.begin, r.end, r.capEnd = dst.blk, dst.begin, dst.end, dst.capEnd
	if old != nil {
		if err := old.Release(); err != nil && !errors.Is(err, block.ErrReleased) {
			return fmt.Errorf("region: release previous block: %w", err)
		}
	}
	return nil
}

// Release frees the backing block and poisons the region. A second call returns
// ErrReleased.
func (r *Region) Release() error {
	if r.released {
		return ErrReleased
	}
	r.released = true
	b := r.blk
	r.blk, r.begin, r.end, r.capEnd = nil, 0, 0, 0
	if b == nil {
		return nil
	}
	if err := b.Release(); err != nil && !errors.Is(err, block.ErrReleased) {
		return fmt.Errorf("region: release: %w", err)
	}
	return nil
}
