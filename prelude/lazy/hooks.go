package lazy

import "context"

// Hooks holds typed observation callbacks for streams of T.
// All fields are optional. Hooks run synchronously on the stream's
// goroutine, so they should be fast.
type Hooks[T any] struct {
	OnStart    func()      // Stream begins being consumed
	OnValue    func(T)     // Value consumed
	OnError    func(error) // Error consumed
	OnComplete func()      // Stream finished (also on cancellation)
}

// hooksKey is unexported to prevent collisions with user context keys.
type hooksKey[T any] struct{}

// WithHooks attaches typed hooks to the context. Multiple calls compose
// in FIFO order: hooks from earlier calls run first.
//
//	ctx := lazy.WithHooks(ctx, lazy.Hooks[int]{
//	    OnValue: func(v int) { log.Printf("value: %d", v) },
//	})
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	if ctx == nil {
		panic("nil context")
	}
	existing := hookSets[T](ctx)
	sets := make([]*Hooks[T], len(existing), len(existing)+1)
	copy(sets, existing)
	sets = append(sets, &hooks)
	return context.WithValue(ctx, hooksKey[T]{}, sets)
}

func hookSets[T any](ctx context.Context) []*Hooks[T] {
	sets, _ := ctx.Value(hooksKey[T]{}).([]*Hooks[T])
	return sets
}

// hookInvoker caches which hook kinds are present so that streams
// without hooks pay nothing per element.
type hookInvoker[T any] struct {
	sets        []*Hooks[T]
	hasStart    bool
	hasValue    bool
	hasError    bool
	hasComplete bool
}

func newHookInvoker[T any](ctx context.Context) *hookInvoker[T] {
	h := &hookInvoker[T]{sets: hookSets[T](ctx)}
	for _, s := range h.sets {
		h.hasStart = h.hasStart || s.OnStart != nil
		h.hasValue = h.hasValue || s.OnValue != nil
		h.hasError = h.hasError || s.OnError != nil
		h.hasComplete = h.hasComplete || s.OnComplete != nil
	}
	return h
}

// startHooks fires OnStart for a terminal consuming on the calling
// goroutine. The caller defers invokeComplete on the result.
func startHooks[T any](ctx context.Context) *hookInvoker[T] {
	h := newHookInvoker[T](ctx)
	h.invokeStart()
	return h
}

func (h *hookInvoker[T]) any() bool {
	return h.hasStart || h.hasValue || h.hasError || h.hasComplete
}

func (h *hookInvoker[T]) invokeStart() {
	if !h.hasStart {
		return
	}
	for _, s := range h.sets {
		if s.OnStart != nil {
			s.OnStart()
		}
	}
}

func (h *hookInvoker[T]) invokeValue(v T) {
	if !h.hasValue {
		return
	}
	for _, s := range h.sets {
		if s.OnValue != nil {
			s.OnValue(v)
		}
	}
}

func (h *hookInvoker[T]) invokeError(err error) {
	if !h.hasError {
		return
	}
	for _, s := range h.sets {
		if s.OnError != nil {
			s.OnError(err)
		}
	}
}

func (h *hookInvoker[T]) invokeResult(res Result[T]) {
	if res.IsValue() {
		h.invokeValue(res.Value())
	} else {
		h.invokeError(res.Error())
	}
}

func (h *hookInvoker[T]) invokeComplete() {
	if !h.hasComplete {
		return
	}
	for _, s := range h.sets {
		if s.OnComplete != nil {
			s.OnComplete()
		}
	}
}
