package lazy

// TransformerFunc adapts a plain function to Transformer.
type TransformerFunc[IN, OUT any] func(Stream[IN]) Stream[OUT]

func (f TransformerFunc[IN, OUT]) Apply(s Stream[IN]) Stream[OUT] {
	return f(s)
}

// Through composes two transformers: t1 runs first, then t2.
func Through[IN, MID, OUT any](t1 Transformer[IN, MID], t2 Transformer[MID, OUT]) Transformer[IN, OUT] {
	return TransformerFunc[IN, OUT](func(s Stream[IN]) Stream[OUT] {
		return t2.Apply(t1.Apply(s))
	})
}

// Chain composes transformers of one type from left to right. With no
// transformers it is the identity.
func Chain[T any](transformers ...Transformer[T, T]) Transformer[T, T] {
	return TransformerFunc[T, T](func(s Stream[T]) Stream[T] {
		return Pipe(s, transformers...)
	})
}

// Pipe applies transformers to source in order.
func Pipe[T any](source Stream[T], transformers ...Transformer[T, T]) Stream[T] {
	result := source
	for _, t := range transformers {
		result = t.Apply(result)
	}
	return result
}
