package lazy

import (
	"context"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// DefaultBufferSize is the default buffer size for stream channels.
// Unbuffered channels keep evaluation lazy: a stage computes at most one
// element ahead of its consumer.
const DefaultBufferSize = 0

// Config holds configuration shared by every stage of a stream. Attach it
// with core.WithConfig; stage options override it.
type Config struct {
	BufferSize int
}

// Option is a functional option for configuring a single stage.
type Option func(*Config)

// WithBufferSize sets the buffer size for a stage's output channel.
// A larger buffer trades laziness for throughput when elements are cheap
// and the consumer is slow.
func WithBufferSize(size int) Option {
	return func(c *Config) {
		c.BufferSize = size
	}
}

// defaultConfig returns the context's Config, or the package defaults.
func defaultConfig(ctx context.Context) Config {
	if cfg, ok := core.GetConfig[Config](ctx); ok {
		return cfg
	}
	return Config{
		BufferSize: DefaultBufferSize,
	}
}

// applyOptions applies functional options on top of the context's config.
func applyOptions(ctx context.Context, opts ...Option) Config {
	cfg := defaultConfig(ctx)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BufferSize < 0 {
		cfg.BufferSize = 0
	}
	return cfg
}

// newChannel makes a stage's output channel.
func newChannel[T any](ctx context.Context, opts []Option) chan Result[T] {
	return make(chan Result[T], applyOptions(ctx, opts...).BufferSize)
}

// NewChannel makes the output channel for a stage built outside this
// package, sized by the context's Config and opts.
func NewChannel[T any](ctx context.Context, opts ...Option) chan Result[T] {
	return newChannel[T](ctx, opts)
}
