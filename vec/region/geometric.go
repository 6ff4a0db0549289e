package region

import (
	"github.com/joshuapare/pivkit/internal/sizemath"
	"github.com/joshuapare/pivkit/vec/block"
)

// Default growth factor of the geometric strategy.
const (
	DefaultGrowthNum = 3
	DefaultGrowthDen = 2
)

// Geometric reallocates to ceil((used+n) * Num/Den) bytes rounded up to a multiple of
// the machine word size. The live data is copied into the new block, which is aligned
// to the live end, and the old block is released.
//
// A zero Num or Den selects the default 3/2 factor. A nil Alloc selects block.Heap.
type Geometric struct {
	Base
	Num   int
	Den   int
	Alloc block.Allocator
}

var (
	_ Strategy    = (*Geometric)(nil)
	_ GapReserver = (*Geometric)(nil)
)

// NewGeometric returns a 3/2 geometric strategy drawing blocks from alloc.
func NewGeometric(alloc block.Allocator) *Geometric {
	return &Geometric{Num: DefaultGrowthNum, Den: DefaultGrowthDen, Alloc: alloc}
}

// Capacity returns the byte capacity the strategy would allocate for need live bytes.
func (g *Geometric) Capacity(need int) (int, error) {
	num, den := g.Num, g.Den
	if num <= 0 || den <= 0 {
		num, den = DefaultGrowthNum, DefaultGrowthDen
	}
	c, err := sizemath.Geometric(need, num, den)
	if err != nil {
		return 0, err
	}
	// A factor below one must still cover the request.
	c = max(c, need)
	return sizemath.AlignWord(c)
}

// Reserve implements Strategy.
func (g *Geometric) Reserve(r *Region, n int) error {
	return reserve(r, n, g.Alloc, g.Capacity)
}

// ReserveGap implements GapReserver.
func (g *Geometric) ReserveGap(r *Region, gap Gap) error {
	return reserveGap(r, gap, g.Alloc, g.Capacity)
}
