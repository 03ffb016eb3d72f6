package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/samber/lo"

	"github.com/lguimbarda/seqflow/flow"
)

// =============================================================================
// Digit Sum Benchmarks (text -> keep digits -> digit value -> Sum)
// =============================================================================

func BenchmarkDigitSum(b *testing.B) {
	text := generateText(LargeSize)

	b.Run("seqflow", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			digits := flow.Pipe[byte](flow.FromString(text), flow.Filter(isDigit))
			_ = flow.Pipe(flow.Pipe(digits, flow.Map(digitValue)), flow.Sum[int]())
		}
	})

	b.Run("rill", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			digits := rill.Filter(rill.FromSlice([]byte(text), nil), 1, func(c byte) (bool, error) { return isDigit(c), nil })
			values := rill.Map(digits, 1, func(c byte) (int, error) { return digitValue(c), nil })
			_, _, _ = rill.Reduce(values, 1, func(a, b int) (int, error) { return add(a, b), nil })
		}
	})

	b.Run("lo", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			digits := lo.Filter([]byte(text), func(c byte, _ int) bool { return isDigit(c) })
			_ = lo.SumBy(digits, digitValue)
		}
	})

	b.Run("go-linq", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = linq.From([]byte(text)).WhereT(isDigit).SelectT(digitValue).SumInts()
		}
	})

	b.Run("raw-loop", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for j := 0; j < len(text); j++ {
				if isDigit(text[j]) {
					sum += digitValue(text[j])
				}
			}
			_ = sum
		}
	})
}

// =============================================================================
// Generated Range Benchmarks (no backing slice for seqflow and go-linq)
// =============================================================================

func BenchmarkRangeSum(b *testing.B) {
	b.Run("seqflow", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = flow.Pipe(flow.Range(0, LargeSize), flow.Sum[int]())
		}
	})

	b.Run("lo", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = lo.Sum(lo.Range(LargeSize))
		}
	})

	b.Run("go-linq", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = linq.Range(0, LargeSize).SumInts()
		}
	})
}
