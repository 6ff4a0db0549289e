package region

import (
	"testing"

	"github.com/joshuapare/pivkit/vec/block"
)

// BenchmarkGrow_Geometric measures amortized single-element pushes.
func BenchmarkGrow_Geometric(b *testing.B) {
	b.ReportAllocs()
	for k := 0; k < b.N; k++ {
		r := New(Forward, WithElemSize(8))
		for k := 0; k < 1024; k++ {
			if _, err := r.Grow(1); err != nil {
				b.Fatal(err)
			}
		}
		_ = r.Release()
	}
}

// BenchmarkGrow_Reverse is the backward-building counterpart.
func BenchmarkGrow_Reverse(b *testing.B) {
	b.ReportAllocs()
	for k := 0; k < b.N; k++ {
		r := New(Reverse, WithElemSize(8))
		for k := 0; k < 1024; k++ {
			if _, err := r.Grow(1); err != nil {
				b.Fatal(err)
			}
		}
		_ = r.Release()
	}
}

// BenchmarkGrow_Mmap uses anonymous mappings as the block source.
func BenchmarkGrow_Mmap(b *testing.B) {
	b.ReportAllocs()
	for k := 0; k < b.N; k++ {
		r := New(Forward, WithElemSize(8), WithStrategy(NewGeometric(block.Mmap{})))
		for k := 0; k < 1024; k++ {
			if _, err := r.Grow(1); err != nil {
				b.Fatal(err)
			}
		}
		_ = r.Release()
	}
}

// BenchmarkInsert_Front measures the in-place tail move.
func BenchmarkInsert_Front(b *testing.B) {
	r := New(Forward, WithElemSize(8))
	if err := r.Reserve(8 * 4096); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2048 == 0 {
			_ = r.Reset()
		}
		if _, err := r.Insert(0, 1); err != nil {
			b.Fatal(err)
		}
	}
}
