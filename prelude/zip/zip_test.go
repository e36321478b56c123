package zip

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

func TestZip(t *testing.T) {
	got := Zip([]int{1, 2, 3}, []string{"a", "b"})
	expected := []core.Pair[int, string]{core.NewPair(1, "a"), core.NewPair(2, "b")}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if got := Zip([]int{}, []int{1}); len(got) != 0 {
		t.Errorf("zip with empty should be empty, got %v", got)
	}
}

func TestZip3(t *testing.T) {
	got := Zip3([]int{1, 2}, []string{"a", "b", "c"}, []bool{true, false})
	if len(got) != 2 {
		t.Fatalf("expected 2 triples, got %d", len(got))
	}
	a, b, c := got[1].Unpack()
	if a != 2 || b != "b" || c != false {
		t.Errorf("unexpected second triple %v", got[1])
	}
}

func TestZipWith(t *testing.T) {
	got := ZipWith(func(a int, b string) string { return fmt.Sprint(a, b) }, []int{1, 2}, []string{"x", "y", "z"})
	if !reflect.DeepEqual(got, []string{"1 x", "2 y"}) {
		t.Errorf("unexpected %v", got)
	}
	sum3 := func(a, b, c int) int { return a + b + c }
	if got := ZipWith3(sum3, []int{1, 2}, []int{10, 20}, []int{100}); !reflect.DeepEqual(got, []int{111}) {
		t.Errorf("unexpected %v", got)
	}
}

func TestZipN(t *testing.T) {
	tests := []struct {
		name     string
		lists    [][]int
		expected [][]int
	}{
		{"none", nil, [][]int{}},
		{"one", [][]int{{1, 2}}, [][]int{{1}, {2}}},
		{"three", [][]int{{1, 2}, {3, 4}, {5, 6}}, [][]int{{1, 3, 5}, {2, 4, 6}}},
		{"ragged", [][]int{{1, 2, 3}, {4}, {5, 6}}, [][]int{{1, 4, 5}}},
		{"one empty", [][]int{{1, 2}, {}}, [][]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZipN(tt.lists...)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestZipWithN(t *testing.T) {
	sum := func(row []int) int {
		acc := 0
		for _, x := range row {
			acc += x
		}
		return acc
	}
	got := ZipWithN(sum, []int{1, 2}, []int{10, 20}, []int{100, 200, 300})
	if !reflect.DeepEqual(got, []int{111, 222}) {
		t.Errorf("unexpected %v", got)
	}
}

func TestUnzip(t *testing.T) {
	as, bs := Unzip([]core.Pair[int, string]{core.NewPair(1, "a"), core.NewPair(2, "b")}).Unpack()
	if !reflect.DeepEqual(as, []int{1, 2}) || !reflect.DeepEqual(bs, []string{"a", "b"}) {
		t.Errorf("unexpected %v %v", as, bs)
	}

	xs, ys, zs := Unzip3(Zip3([]int{1, 2}, []int{3, 4}, []int{5, 6})).Unpack()
	if !reflect.DeepEqual(xs, []int{1, 2}) || !reflect.DeepEqual(ys, []int{3, 4}) || !reflect.DeepEqual(zs, []int{5, 6}) {
		t.Errorf("unexpected %v %v %v", xs, ys, zs)
	}
}

func TestUnzipN(t *testing.T) {
	rows := [][]int{{1, 2, 3}, {4, 5}, {6, 7, 8}}
	expected := [][]int{{1, 4, 6}, {2, 5, 7}}
	if got := UnzipN(rows); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if got := UnzipN[int](nil); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}

	lists := [][]string{{"a", "b"}, {"c", "d"}}
	if got := UnzipN(ZipN(lists...)); !reflect.DeepEqual(got, lists) {
		t.Errorf("UnzipN should invert ZipN, got %v", got)
	}
}
