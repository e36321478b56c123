// Package prelude gathers the most used functions of the min-prelude
// packages behind one import.
//
// The subpackages hold the full set:
//
//	core     tuples, constraints, errors
//	fn       combinators, currying
//	ord      Ordering, comparisons
//	num      integral and floating point functions
//	list     slices as lists
//	fold     folds and scans
//	zip      zipping and unzipping
//	text     lines, words, Show and Read
//	lazy     infinite lists
//	par      parallel maps and folds
//	observe  stream metrics
//	sql      lists from database queries
//	debug    tracing
package prelude

import (
	"context"

	"github.com/lguimbarda/min-prelude/prelude/core"
	"github.com/lguimbarda/min-prelude/prelude/fn"
	"github.com/lguimbarda/min-prelude/prelude/fold"
	"github.com/lguimbarda/min-prelude/prelude/lazy"
	"github.com/lguimbarda/min-prelude/prelude/list"
	"github.com/lguimbarda/min-prelude/prelude/ord"
	"github.com/lguimbarda/min-prelude/prelude/text"
	"github.com/lguimbarda/min-prelude/prelude/zip"
)

type (
	// Pair is a 2-tuple.
	Pair[A, B any] = core.Pair[A, B]

	// Triple is a 3-tuple.
	Triple[A, B, C any] = core.Triple[A, B, C]

	// Ordering is the result of a comparison: LT, EQ or GT.
	Ordering = ord.Ordering

	// Stream is a lazy, possibly infinite list.
	Stream[T any] = lazy.Stream[T]

	// Result is one element of a Stream.
	Result[T any] = lazy.Result[T]
)

const (
	LT = ord.LT
	EQ = ord.EQ
	GT = ord.GT
)

var (
	ErrEmptyList     = core.ErrEmptyList
	ErrNegativeIndex = core.ErrNegativeIndex
	ErrIndexTooLarge = core.ErrIndexTooLarge
)

// NewPair creates a Pair.
func NewPair[A, B any](a A, b B) Pair[A, B] { return core.NewPair(a, b) }

// Fst returns the first component of a Pair.
func Fst[A, B any](p Pair[A, B]) A { return p.Fst() }

// Snd returns the second component of a Pair.
func Snd[A, B any](p Pair[A, B]) B { return p.Snd() }

// Error aborts evaluation with msg.
func Error[T any](msg string) T { return core.Error[T](msg) }

func Id[A any](x A) A                                         { return x }
func Const[A, B any](x A) func(B) A                           { return fn.Const[A, B](x) }
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C { return fn.Compose(f, g) }
func Flip[A, B, C any](f func(A, B) C) func(B, A) C           { return fn.Flip(f) }
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C     { return fn.Curry(f) }
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C   { return fn.Uncurry(f) }

// Compare compares two ordered values.
func Compare[T core.Ordered](x, y T) Ordering { return ord.Compare(x, y) }

func Map[A, B any](f func(A) B, xs []A) []B       { return list.Map(f, xs) }
func Filter[A any](pred func(A) bool, xs []A) []A { return list.Filter(pred, xs) }
func Head[A any](xs []A) (A, error)               { return list.Head(xs) }
func Last[A any](xs []A) (A, error)               { return list.Last(xs) }
func Tail[A any](xs []A) []A                      { return list.Tail(xs) }
func Reverse[A any](xs []A) []A                   { return list.Reverse(xs) }
func Take[A any](n int, xs []A) []A               { return list.Take(n, xs) }
func Drop[A any](n int, xs []A) []A               { return list.Drop(n, xs) }
func Elem[A comparable](x A, xs []A) bool         { return list.Elem(x, xs) }

func Foldl[A, B any](f func(B, A) B, acc B, xs []A) B { return fold.Foldl(f, acc, xs) }
func Foldr[A, B any](f func(A, B) B, acc B, xs []A) B { return fold.Foldr(f, acc, xs) }
func Sum[T core.Number](xs []T) T                     { return fold.Sum(xs) }
func Product[T core.Number](xs []T) T                 { return fold.Product(xs) }
func Maximum[T core.Ordered](xs []T) (T, error)       { return fold.Maximum(xs) }
func Minimum[T core.Ordered](xs []T) (T, error)       { return fold.Minimum(xs) }

func Zip[A, B any](as []A, bs []B) []Pair[A, B] { return zip.Zip(as, bs) }
func ZipWith[A, B, C any](f func(A, B) C, as []A, bs []B) []C {
	return zip.ZipWith(f, as, bs)
}
func Unzip[A, B any](ps []Pair[A, B]) Pair[[]A, []B] { return zip.Unzip(ps) }

func Lines(s string) []string       { return text.Lines(s) }
func Unlines(lines []string) string { return text.Unlines(lines) }
func Words(s string) []string       { return text.Words(s) }
func Unwords(words []string) string { return text.Unwords(words) }

// Show converts x to its textual form.
func Show(x any) (string, error) { return text.Show(x) }

// Iterate creates the infinite Stream x, f(x), f(f(x)), ...
func Iterate[T any](f func(T) T, x T) Stream[T] { return lazy.Iterate(f, x) }

// Repeat creates the infinite Stream x, x, x, ...
func Repeat[T any](x T) Stream[T] { return lazy.Repeat(x) }

// Cycle repeats the elements of xs forever.
func Cycle[T any](xs []T) Stream[T] { return lazy.Cycle(xs) }

// TakeStream reads the first n elements of s.
func TakeStream[T any](ctx context.Context, n int, s Stream[T]) ([]T, error) {
	return lazy.Slice(ctx, lazy.Take[T](n).Apply(s))
}
