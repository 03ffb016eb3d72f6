// Package benchmarks provides comparative benchmarks of seqflow against
// popular Go collection and stream processing libraries.
package benchmarks

import (
	"strconv"
)

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

// generateInts creates a slice of integers for benchmarking.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// generateText creates a string of n decimal digits for benchmarking.
func generateText(n int) string {
	buf := make([]byte, 0, n)
	for i := range n {
		buf = strconv.AppendInt(buf, int64(i%10), 10)
	}
	return string(buf)
}

// square returns the square of an integer.
func square(x int) int {
	return x * x
}

// isEven returns true if the number is even.
func isEven(x int) bool {
	return x%2 == 0
}

// add returns the sum of two integers.
func add(a, b int) int {
	return a + b
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// digitValue converts an ASCII digit to its numeric value.
func digitValue(b byte) int {
	return int(b - '0')
}
