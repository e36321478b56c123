package prelude_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/lguimbarda/min-prelude/prelude"
)

func Example() {
	words := prelude.Words("the quick brown fox")
	lengths := prelude.Map(func(w string) int { return len(w) }, words)
	longest, _ := prelude.Maximum(lengths)

	fmt.Println(prelude.Sum(lengths), longest)
	fmt.Println(prelude.Unwords(prelude.Reverse(words)))
	// Output:
	// 16 5
	// fox brown quick the
}

func ExampleIterate() {
	double := func(n int) int { return n * 2 }
	xs, _ := prelude.TakeStream(context.Background(), 6, prelude.Iterate(double, 1))
	fmt.Println(xs)
	// Output: [1 2 4 8 16 32]
}

func ExampleCycle() {
	xs, _ := prelude.TakeStream(context.Background(), 5, prelude.Cycle([]string{"tick", "tock"}))
	fmt.Println(strings.Join(xs, " "))
	// Output: tick tock tick tock tick
}

func ExampleCompose() {
	shout := prelude.Compose(strings.ToUpper, strings.TrimSpace)
	fmt.Println(shout("  hello "))
	// Output: HELLO
}

func ExampleFoldr() {
	cons := func(x int, acc []int) []int { return append(acc, x) }
	fmt.Println(prelude.Foldr(cons, nil, []int{1, 2, 3}))
	// Output: [3 2 1]
}

func ExampleZip() {
	pairs := prelude.Zip([]string{"a", "b", "c"}, []int{1, 2})
	for _, p := range pairs {
		fmt.Println(prelude.Fst(p), prelude.Snd(p))
	}
	// Output:
	// a 1
	// b 2
}

func ExampleHead() {
	_, err := prelude.Head([]int{})
	fmt.Println(err == prelude.ErrEmptyList)
	// Output: true
}

func ExampleCompare() {
	fmt.Println(prelude.Compare(1, 2), prelude.Compare("b", "a"), prelude.Compare(3.0, 3.0) == prelude.EQ)
	// Output: LT GT true
}
