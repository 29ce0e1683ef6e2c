package stream

import (
	"io"

	"github.com/adamluzsi/rdfstream/internal/errorkit"
)

// Iterator is the Next/Value form of a sequence.
//
//	defer iter.Close()
//	for iter.Next() {
//		v := iter.Value()
//	}
//	if err := iter.Err(); err != nil {
//		// handle error
//	}
type Iterator[T any] interface {
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	Next() bool
	// Value returns the current value in the iterator.
	Value() T
}

// Iterate exposes the Stream as an Iterator.
func Iterate[T any](s *Stream[T]) Iterator[T] {
	return &streamIterator[T]{stream: s}
}

type streamIterator[T any] struct {
	stream *Stream[T]
	value  T
}

func (i *streamIterator[T]) Next() bool {
	v, ok := i.stream.Next()
	if !ok {
		var zero T
		i.value = zero
		return false
	}
	i.value = v
	return true
}

func (i *streamIterator[T]) Value() T { return i.value }

func (i *streamIterator[T]) Err() error { return i.stream.Err() }

func (i *streamIterator[T]) Close() error { return i.stream.Close() }

// Collect drains the stream and closes it.
func Collect[T any](s *Stream[T]) (_ []T, returnErr error) {
	defer errorkit.Finish(&returnErr, s.Close)
	var vs []T
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs, s.Err()
}
