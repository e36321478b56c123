package fold

// Scanl is like Foldl but returns every intermediate accumulator, starting
// with acc. The result has len(xs)+1 elements.
//
//	Scanl(add, 0, []int{1, 2, 3}) // [0 1 3 6]
func Scanl[A, B any](f func(B, A) B, acc B, xs []A) []B {
	out := make([]B, 0, len(xs)+1)
	out = append(out, acc)
	for _, x := range xs {
		acc = f(acc, x)
		out = append(out, acc)
	}
	return out
}

// Scanl1 is Scanl using the first element as the starting value. An empty
// list gives an empty result.
func Scanl1[A any](f func(A, A) A, xs []A) []A {
	if len(xs) == 0 {
		return []A{}
	}
	return Scanl(f, xs[0], xs[1:])
}

// Scanr is the right-to-left counterpart of Scanl. The result ends with acc
// and its first element equals Foldr(f, acc, xs).
//
//	Scanr(add, 0, []int{1, 2, 3}) // [6 5 3 0]
func Scanr[A, B any](f func(A, B) B, acc B, xs []A) []B {
	out := make([]B, len(xs)+1)
	out[len(xs)] = acc
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
		out[i] = acc
	}
	return out
}

// Scanr1 is Scanr using the last element as the starting value. An empty
// list gives an empty result.
func Scanr1[A any](f func(A, A) A, xs []A) []A {
	if len(xs) == 0 {
		return []A{}
	}
	last := len(xs) - 1
	return Scanr(f, xs[last], xs[:last])
}
