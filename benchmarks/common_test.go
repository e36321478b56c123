// Package benchmarks compares min-prelude with popular Go collection
// libraries.
package benchmarks

import (
	"context"
	"strconv"
)

const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

func generateStrings(n int) []string {
	data := make([]string, n)
	for i := range data {
		data[i] = strconv.Itoa(i)
	}
	return data
}

func square(x int) int  { return x * x }
func isEven(x int) bool { return x%2 == 0 }
func add(a, b int) int  { return a + b }

var ctx = context.Background()
