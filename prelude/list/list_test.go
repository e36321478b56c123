package list

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

func isEven(n int) bool { return n%2 == 0 }

func TestMap(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []string
	}{
		{"empty", []int{}, []string{}},
		{"nil", nil, []string{}},
		{"several", []int{1, 2, 3}, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(strconv.Itoa, tt.input)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFilterAndPartition(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6}
	if got := Filter(isEven, xs); !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("Filter: got %v", got)
	}
	pass, fail := Partition(isEven, xs).Unpack()
	if !slices.Equal(pass, []int{2, 4, 6}) || !slices.Equal(fail, []int{1, 3, 5}) {
		t.Errorf("Partition: got %v %v", pass, fail)
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	xs := make([]int, 2, 10)
	xs[0], xs[1] = 1, 2
	got := Append(xs, []int{3})
	got[0] = 99
	if xs[0] != 1 {
		t.Error("Append shares storage with its input")
	}
	if !slices.Equal(Append([]int{}, []int{}), []int{}) {
		t.Error("Append of empties should be empty")
	}
}

func TestEach(t *testing.T) {
	var seen []int
	xs := []int{1, 2, 3}
	got := Each(func(n int) { seen = append(seen, n) }, xs)
	if !slices.Equal(seen, xs) || !slices.Equal(got, xs) {
		t.Errorf("Each: seen %v, returned %v", seen, got)
	}
}

func TestHeadLast(t *testing.T) {
	if h, err := Head([]int{1, 2, 3}); err != nil || h != 1 {
		t.Errorf("Head: got %d, %v", h, err)
	}
	if l, err := Last([]int{1, 2, 3}); err != nil || l != 3 {
		t.Errorf("Last: got %d, %v", l, err)
	}
	if _, err := Head([]int{}); !errors.Is(err, core.ErrEmptyList) {
		t.Errorf("Head of empty: expected ErrEmptyList, got %v", err)
	}
	if _, err := Last[string](nil); !errors.Is(err, core.ErrEmptyList) {
		t.Errorf("Last of empty: expected ErrEmptyList, got %v", err)
	}
}

func TestTailInit(t *testing.T) {
	if got := Tail([]int{1, 2, 3}); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Tail: got %v", got)
	}
	if got := Init([]int{1, 2, 3}); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Init: got %v", got)
	}
	if got := Tail([]int{}); len(got) != 0 {
		t.Errorf("Tail of empty: got %v", got)
	}
	if got := Init([]int{}); len(got) != 0 {
		t.Errorf("Init of empty: got %v", got)
	}
}

func TestNullLength(t *testing.T) {
	if !Null([]int{}) || Null([]int{1}) {
		t.Error("Null is wrong")
	}
	if Length([]int{1, 2, 3}) != 3 || Length[int](nil) != 0 {
		t.Error("Length is wrong")
	}
}

func TestIndex(t *testing.T) {
	xs := []string{"a", "b", "c"}
	tests := []struct {
		name     string
		i        int
		expected string
		err      error
	}{
		{"first", 0, "a", nil},
		{"last", 2, "c", nil},
		{"negative", -1, "", core.ErrNegativeIndex},
		{"one past the end", 3, "", core.ErrIndexTooLarge},
		{"far past the end", 30, "", core.ErrIndexTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Index(xs, tt.i)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestReverseLeavesInput(t *testing.T) {
	xs := []int{1, 2, 3}
	got := Reverse(xs)
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("Reverse: got %v", got)
	}
	if !slices.Equal(xs, []int{1, 2, 3}) {
		t.Errorf("Reverse modified its input: %v", xs)
	}
}

func TestConcat(t *testing.T) {
	if got := Concat([][]int{{1, 2}, {}, {3}}); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Concat: got %v", got)
	}
	if got := Concat[int](nil); len(got) != 0 {
		t.Errorf("Concat of nothing: got %v", got)
	}
	dup := func(n int) []int { return []int{n, n} }
	if got := ConcatMap(dup, []int{1, 2}); !slices.Equal(got, []int{1, 1, 2, 2}) {
		t.Errorf("ConcatMap: got %v", got)
	}
}

func TestReplicate(t *testing.T) {
	if got := Replicate(3, "x"); !slices.Equal(got, []string{"x", "x", "x"}) {
		t.Errorf("Replicate: got %v", got)
	}
	if got := Replicate(-1, "x"); len(got) != 0 {
		t.Errorf("Replicate negative: got %v", got)
	}
}

func TestTakeDrop(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name       string
		n          int
		take, drop []int
	}{
		{"middle", 2, []int{1, 2}, []int{3, 4, 5}},
		{"zero", 0, []int{}, []int{1, 2, 3, 4, 5}},
		{"negative", -3, []int{}, []int{1, 2, 3, 4, 5}},
		{"too many", 9, []int{1, 2, 3, 4, 5}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Take(tt.n, xs); !slices.Equal(got, tt.take) {
				t.Errorf("Take: expected %v, got %v", tt.take, got)
			}
			if got := Drop(tt.n, xs); !slices.Equal(got, tt.drop) {
				t.Errorf("Drop: expected %v, got %v", tt.drop, got)
			}
			l, r := SplitAt(tt.n, xs).Unpack()
			if !slices.Equal(l, tt.take) || !slices.Equal(r, tt.drop) {
				t.Errorf("SplitAt: got %v %v", l, r)
			}
		})
	}
}

func TestPrefixes(t *testing.T) {
	xs := []int{2, 4, 5, 6}
	if got := TakeWhile(isEven, xs); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("TakeWhile: got %v", got)
	}
	if got := DropWhile(isEven, xs); !slices.Equal(got, []int{5, 6}) {
		t.Errorf("DropWhile: got %v", got)
	}
	l, r := Span(isEven, xs).Unpack()
	if !slices.Equal(l, []int{2, 4}) || !slices.Equal(r, []int{5, 6}) {
		t.Errorf("Span: got %v %v", l, r)
	}
	l, r = Break(func(n int) bool { return n > 4 }, xs).Unpack()
	if !slices.Equal(l, []int{2, 4}) || !slices.Equal(r, []int{5, 6}) {
		t.Errorf("Break: got %v %v", l, r)
	}
	if got := TakeWhile(isEven, []int{2, 4}); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("TakeWhile all: got %v", got)
	}
}

func TestElemLookup(t *testing.T) {
	if !Elem("b", []string{"a", "b"}) || Elem("z", []string{"a", "b"}) {
		t.Error("Elem is wrong")
	}
	if NotElem(1, []int{1}) || !NotElem(2, []int{1}) {
		t.Error("NotElem is wrong")
	}

	table := []core.Pair[string, int]{core.NewPair("one", 1), core.NewPair("two", 2), core.NewPair("one", 11)}
	if v, ok := Lookup("one", table); !ok || v != 1 {
		t.Errorf("Lookup should find the first match, got %d %v", v, ok)
	}
	if _, ok := Lookup("three", table); ok {
		t.Error("Lookup found a missing key")
	}
}
