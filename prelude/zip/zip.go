// Package zip combines lists element-wise. Every zip truncates to the
// shortest input.
package zip

import "github.com/lguimbarda/min-prelude/prelude/core"

// Zip pairs up the elements of as and bs.
func Zip[A, B any](as []A, bs []B) []core.Pair[A, B] {
	return ZipWith(core.NewPair[A, B], as, bs)
}

// Zip3 is Zip for three lists.
func Zip3[A, B, C any](as []A, bs []B, cs []C) []core.Triple[A, B, C] {
	return ZipWith3(core.NewTriple[A, B, C], as, bs, cs)
}

// ZipWith combines corresponding elements with f.
func ZipWith[A, B, C any](f func(A, B) C, as []A, bs []B) []C {
	n := min(len(as), len(bs))
	out := make([]C, n)
	for i := range n {
		out[i] = f(as[i], bs[i])
	}
	return out
}

// ZipWith3 is ZipWith for three lists.
func ZipWith3[A, B, C, D any](f func(A, B, C) D, as []A, bs []B, cs []C) []D {
	n := min(len(as), len(bs), len(cs))
	out := make([]D, n)
	for i := range n {
		out[i] = f(as[i], bs[i], cs[i])
	}
	return out
}

// ZipN zips any number of lists of the same element type. Row i of the
// result holds element i of every list. No lists gives an empty result.
//
//	ZipN([]int{1, 2}, []int{3, 4}, []int{5, 6}) // [[1 3 5] [2 4 6]]
func ZipN[A any](lists ...[]A) [][]A {
	return ZipWithN(func(row []A) []A { return row }, lists...)
}

// ZipWithN combines element i of every list with f. The slice passed to f
// is freshly allocated for each call and may be retained.
func ZipWithN[A, B any](f func([]A) B, lists ...[]A) []B {
	if len(lists) == 0 {
		return []B{}
	}
	n := len(lists[0])
	for _, l := range lists[1:] {
		n = min(n, len(l))
	}
	out := make([]B, n)
	for i := range n {
		row := make([]A, len(lists))
		for j, l := range lists {
			row[j] = l[i]
		}
		out[i] = f(row)
	}
	return out
}

// Unzip splits a list of pairs into a pair of lists.
func Unzip[A, B any](ps []core.Pair[A, B]) core.Pair[[]A, []B] {
	as := make([]A, len(ps))
	bs := make([]B, len(ps))
	for i, p := range ps {
		as[i], bs[i] = p.Unpack()
	}
	return core.NewPair(as, bs)
}

// Unzip3 splits a list of triples into a triple of lists.
func Unzip3[A, B, C any](ts []core.Triple[A, B, C]) core.Triple[[]A, []B, []C] {
	as := make([]A, len(ts))
	bs := make([]B, len(ts))
	cs := make([]C, len(ts))
	for i, t := range ts {
		as[i], bs[i], cs[i] = t.Unpack()
	}
	return core.NewTriple(as, bs, cs)
}

// UnzipN transposes rows into columns. The number of columns is the
// length of the shortest row, so UnzipN inverts ZipN.
func UnzipN[A any](rows [][]A) [][]A {
	if len(rows) == 0 {
		return [][]A{}
	}
	width := len(rows[0])
	for _, r := range rows[1:] {
		width = min(width, len(r))
	}
	cols := make([][]A, width)
	for j := range cols {
		cols[j] = make([]A, len(rows))
		for i, r := range rows {
			cols[j][i] = r[j]
		}
	}
	return cols
}
