package nodestream

import (
	"context"

	"github.com/adamluzsi/rdfstream/statement"
	"github.com/adamluzsi/rdfstream/stream"
)

type Option func(*config)

type config struct {
	Context              context.Context
	Allocator            statement.Allocator
	CompatibleExhaustion bool
	Stream               []stream.Option
}

func newConfig(opts []Option) config {
	c := config{
		Context:   context.Background(),
		Allocator: statement.DefaultAllocator,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) StreamOptions() []stream.Option {
	opts := []stream.Option{stream.WithContext(c.Context), stream.WithName("nodestream")}
	return append(opts, c.Stream...)
}

// WithAllocator sets the Allocator used to copy the template.
func WithAllocator(a statement.Allocator) Option {
	return func(c *config) {
		if a != nil {
			c.Allocator = a
		}
	}
}

// WithContext sets the context used for logging.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.Context = ctx
		}
	}
}

// WithStreamOptions passes options to the underlying stream.
func WithStreamOptions(opts ...stream.Option) Option {
	return func(c *config) { c.Stream = append(c.Stream, opts...) }
}

// WithCompatibleExhaustion makes an allocation failure end the stream
// as if the node sequence was exhausted, instead of reporting statement.ErrAllocation.
func WithCompatibleExhaustion() Option {
	return func(c *config) { c.CompatibleExhaustion = true }
}
