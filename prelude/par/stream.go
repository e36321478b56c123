package par

import (
	"context"
	"sync"

	"github.com/lguimbarda/min-prelude/prelude/lazy"
)

// StreamMap creates a lazy.Transformer that applies f concurrently using n
// workers. Results may arrive out of order. Errors pass through and a
// panic in f becomes an error Result. opts size the output channel.
func StreamMap[IN, OUT any](n int, f func(IN) OUT, opts ...lazy.Option) lazy.Transformer[IN, OUT] {
	n = workers(n)

	return lazy.Transmit(func(ctx context.Context, in <-chan lazy.Result[IN]) <-chan lazy.Result[OUT] {
		out := lazy.NewChannel[OUT](ctx, opts...)

		go func() {
			defer close(out)

			var wg sync.WaitGroup
			wg.Add(n)
			for range n {
				go func() {
					defer wg.Done()
					for res := range in {
						next := lazy.Err[OUT](res.Error())
						if res.IsValue() {
							v, err := lazy.Protect(func() OUT { return f(res.Value()) })
							next = lazy.Ok(v)
							if err != nil {
								next = lazy.Err[OUT](err)
							}
						}
						select {
						case <-ctx.Done():
							return
						case out <- next:
						}
					}
				}()
			}
			wg.Wait()
		}()

		return out
	})
}
