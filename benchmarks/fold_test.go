package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/samber/lo"

	"github.com/lguimbarda/min-prelude/prelude/fold"
	"github.com/lguimbarda/min-prelude/prelude/lazy"
	"github.com/lguimbarda/min-prelude/prelude/par"
)

func BenchmarkFoldl_Prelude_Small(b *testing.B)  { benchmarkFoldlPrelude(b, SmallSize) }
func BenchmarkFoldl_Prelude_Medium(b *testing.B) { benchmarkFoldlPrelude(b, MediumSize) }
func BenchmarkFoldl_Prelude_Large(b *testing.B)  { benchmarkFoldlPrelude(b, LargeSize) }

func benchmarkFoldlPrelude(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fold.Foldl(add, 0, data)
	}
}

func BenchmarkFoldl_Lo_Medium(b *testing.B) {
	data := generateInts(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.Reduce(data, func(acc int, x int, _ int) int {
			return add(acc, x)
		}, 0)
	}
}

func BenchmarkFoldl_GoLinq_Medium(b *testing.B) {
	data := generateInts(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = linq.From(data).AggregateT(add)
	}
}

func BenchmarkReduce_Par_Medium(b *testing.B) {
	data := generateInts(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = par.Reduce(1, add, data)
	}
}

func BenchmarkReduce_Rill_Medium(b *testing.B) {
	data := generateInts(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = rill.Reduce(rill.FromSlice(data, nil), 1, func(a, b int) (int, error) {
			return add(a, b), nil
		})
	}
}

func BenchmarkScanl_Prelude_Medium(b *testing.B) {
	data := generateInts(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fold.Scanl(add, 0, data)
	}
}

// Channel-based laziness has a per-element cost; this measures it against
// the strict Scanl above.
func BenchmarkScanl_Lazy_Medium(b *testing.B) {
	data := generateInts(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = lazy.Slice(ctx, lazy.Scanl(add, 0).Apply(lazy.FromSlice(data)))
	}
}

func BenchmarkSum_Prelude_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fold.Sum(data)
	}
}

func BenchmarkSum_Lo_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.Sum(data)
	}
}
