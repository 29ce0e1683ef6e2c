package stream

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/adamluzsi/rdfstream/stream"

type Option func(*config)

type config struct {
	Context context.Context
	Meter   metric.Meter
	Name    string
}

func newConfig(opts []Option) config {
	c := config{
		Context: context.Background(),
		Name:    "stream",
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.Meter == nil {
		c.Meter = noop.NewMeterProvider().Meter(instrumentationName)
	}
	return c
}

// WithContext sets the context used for logging and metric recording.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.Context = ctx
		}
	}
}

// WithMeter makes the Stream record its counters with the given meter.
func WithMeter(m metric.Meter) Option {
	return func(c *config) { c.Meter = m }
}

// WithName labels the Stream in logs and metrics.
func WithName(name string) Option {
	return func(c *config) { c.Name = name }
}

type instruments struct {
	pulled    metric.Int64Counter
	rejected  metric.Int64Counter
	delivered metric.Int64Counter
	discarded metric.Int64Counter
	failed    metric.Int64Counter
	attrs     metric.AddOption
}

func newInstruments(c config) (*instruments, error) {
	var (
		i   = &instruments{attrs: metric.WithAttributes(attribute.String("stream", c.Name))}
		err error
	)
	if i.pulled, err = c.Meter.Int64Counter("rdfstream.stream.pulled",
		metric.WithDescription("elements pulled from the producer"),
		metric.WithUnit("{element}")); err != nil {
		return nil, err
	}
	if i.rejected, err = c.Meter.Int64Counter("rdfstream.stream.rejected",
		metric.WithDescription("elements suppressed by the mapper"),
		metric.WithUnit("{element}")); err != nil {
		return nil, err
	}
	if i.delivered, err = c.Meter.Int64Counter("rdfstream.stream.delivered",
		metric.WithDescription("elements handed to the consumer"),
		metric.WithUnit("{element}")); err != nil {
		return nil, err
	}
	if i.discarded, err = c.Meter.Int64Counter("rdfstream.stream.discarded",
		metric.WithDescription("buffered elements dropped on close"),
		metric.WithUnit("{element}")); err != nil {
		return nil, err
	}
	if i.failed, err = c.Meter.Int64Counter("rdfstream.stream.failed",
		metric.WithDescription("producer errors"),
		metric.WithUnit("{error}")); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *instruments) Pulled(ctx context.Context)    { i.pulled.Add(ctx, 1, i.attrs) }
func (i *instruments) Rejected(ctx context.Context)  { i.rejected.Add(ctx, 1, i.attrs) }
func (i *instruments) Delivered(ctx context.Context) { i.delivered.Add(ctx, 1, i.attrs) }
func (i *instruments) Discarded(ctx context.Context) { i.discarded.Add(ctx, 1, i.attrs) }
func (i *instruments) Failed(ctx context.Context)    { i.failed.Add(ctx, 1, i.attrs) }
