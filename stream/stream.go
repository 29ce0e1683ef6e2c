// Package stream implements a pull based lazy sequence.
//
// A Producer supplies elements through three primitives: End, Next and Close.
// Stream wraps a Producer with sticky end-of-sequence detection,
// at most one element of lookahead, and an optional Mapper stage
// that can transform or suppress elements without the Producer knowing about it.
//
// A Stream serves one consumer; its methods must not be called concurrently.
package stream

import (
	"context"
	"io"

	"github.com/adamluzsi/rdfstream/internal/errorkit"
	"github.com/adamluzsi/rdfstream/internal/logger"
)

const (
	ErrNilProducer        errorkit.Error = "stream: nil producer"
	ErrConsumptionStarted errorkit.Error = "stream: map can not be set after consumption started"
	ErrClosed             errorkit.Error = "stream: closed"
)

type Stream[T any] struct {
	producer Producer[T]
	mapper   Mapper[T]

	ctx     context.Context
	metrics *instruments

	lookahead T
	buffered  bool

	started bool
	ended   bool
	closed  bool
	err     error
}

// New wraps the producer into a Stream.
// The Stream takes ownership of the producer and closes it on Close.
func New[T any](p Producer[T], opts ...Option) (*Stream[T], error) {
	if p == nil {
		return nil, ErrNilProducer
	}
	c := newConfig(opts)
	metrics, err := newInstruments(c)
	if err != nil {
		return nil, err
	}
	return &Stream[T]{
		producer: p,
		ctx:      logger.ContextWith(c.Context, logger.Field("stream", c.Name)),
		metrics:  metrics,
	}, nil
}

// SetMap installs the Mapper stage.
// It must be called before the first HasNext or Next call.
func (s *Stream[T]) SetMap(m Mapper[T]) error {
	if s.closed {
		return ErrClosed
	}
	if s.started {
		return ErrConsumptionStarted
	}
	s.mapper = m
	return nil
}

// HasNext reports whether a subsequent Next call would yield an element.
// With a Mapper installed, HasNext may pull from the producer and buffer the accepted element.
func (s *Stream[T]) HasNext() bool {
	s.started = true
	if s.ended {
		return false
	}
	if s.mapper == nil {
		if s.producer.End() {
			s.end()
			return false
		}
		return true
	}
	if s.buffered {
		return true
	}
	v, ok := s.pullMapped()
	if !ok {
		s.end()
		return false
	}
	s.lookahead, s.buffered = v, true
	return true
}

// Next returns the next element of the stream.
// The returned element is owned by the caller.
// Once Next reports no element, the stream stays ended.
func (s *Stream[T]) Next() (T, bool) {
	s.started = true
	var zero T
	if s.ended {
		return zero, false
	}
	if s.mapper == nil {
		v, ok := s.pull()
		if !ok {
			s.end()
			return zero, false
		}
		s.metrics.Delivered(s.ctx)
		return v, true
	}
	if s.buffered {
		v := s.lookahead
		s.lookahead, s.buffered = zero, false
		s.metrics.Delivered(s.ctx)
		return v, true
	}
	v, ok := s.pullMapped()
	if !ok {
		s.end()
		return zero, false
	}
	s.metrics.Delivered(s.ctx)
	return v, true
}

// Err returns the error that ended the stream, if any.
func (s *Stream[T]) Err() error {
	return s.err
}

// Close releases the producer and discards a buffered element.
// The producer is closed exactly once, regardless how many times Close is called.
func (s *Stream[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.ended = true
	var errs []error
	errs = append(errs, s.producer.Close())
	if s.buffered {
		if c, ok := any(s.lookahead).(io.Closer); ok {
			errs = append(errs, c.Close())
		}
		var zero T
		s.lookahead, s.buffered = zero, false
		s.metrics.Discarded(s.ctx)
	}
	err := errorkit.Merge(errs...)
	logger.Debug(s.ctx, "stream closed", logger.ErrField(err))
	return err
}

func (s *Stream[T]) pull() (T, bool) {
	v, ok, err := s.producer.Next()
	if err != nil {
		s.fail(err)
		var zero T
		return zero, false
	}
	if !ok {
		var zero T
		return zero, false
	}
	s.metrics.Pulled(s.ctx)
	return v, true
}

// pullMapped asks the producer whether it is exhausted before every pull,
// and stops as soon as either the producer reports the end or a pull yields nothing.
func (s *Stream[T]) pullMapped() (T, bool) {
	for !s.producer.End() {
		v, ok := s.pull()
		if !ok {
			break
		}
		if mapped, keep := s.mapper.Map(v); keep {
			return mapped, true
		}
		s.metrics.Rejected(s.ctx)
	}
	var zero T
	return zero, false
}

type errProducer interface{ Err() error }

func (s *Stream[T]) end() {
	if s.ended {
		return
	}
	s.ended = true
	if ep, ok := s.producer.(errProducer); ok && s.err == nil {
		if err := ep.Err(); err != nil {
			s.fail(err)
		}
	}
	logger.Debug(s.ctx, "stream ended", logger.ErrField(s.err))
}

func (s *Stream[T]) fail(err error) {
	if s.err == nil {
		s.err = err
	}
	s.metrics.Failed(s.ctx)
	logger.Debug(s.ctx, "stream producer failed", logger.ErrField(err))
}
