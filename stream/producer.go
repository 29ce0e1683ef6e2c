package stream

// Producer is the capability set a Stream consumes.
//
// End reports exhaustion without consuming an element and may be called any number of times.
// Next pulls the next element; ok=false signals exhaustion even when End was not asked before.
// A non-nil error ends the stream and is reported through Stream.Err.
// Close releases the producer's resources; a Stream calls it exactly once.
//
// A Producer may optionally implement `Err() error`,
// which is consulted when the Stream observes the end of the sequence.
type Producer[T any] interface {
	End() bool
	Next() (v T, ok bool, err error)
	Close() error
}

// Func enables you to create a Producer with lambda expressions.
// The close function is optional.
func Func[T any](end func() bool, next func() (T, bool, error), close func() error) Producer[T] {
	return &funcProducer[T]{EndFn: end, NextFn: next, CloseFn: close}
}

type funcProducer[T any] struct {
	EndFn   func() bool
	NextFn  func() (T, bool, error)
	CloseFn func() error
}

func (p *funcProducer[T]) End() bool { return p.EndFn() }

func (p *funcProducer[T]) Next() (T, bool, error) { return p.NextFn() }

func (p *funcProducer[T]) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}

// Slice returns a Producer that yields the elements of the slice in order.
func Slice[T any](vs []T) *SliceProducer[T] {
	return &SliceProducer[T]{Slice: vs}
}

type SliceProducer[T any] struct {
	Slice []T

	index  int
	closed bool
}

func (p *SliceProducer[T]) End() bool {
	return p.closed || len(p.Slice) <= p.index
}

func (p *SliceProducer[T]) Next() (T, bool, error) {
	if p.End() {
		var zero T
		return zero, false, nil
	}
	v := p.Slice[p.index]
	p.index++
	return v, true, nil
}

func (p *SliceProducer[T]) Close() error {
	p.closed = true
	return nil
}

// Empty returns a Producer that is exhausted from the start.
func Empty[T any]() Producer[T] {
	return Slice[T](nil)
}

// FromIterator turns a Next/Value style iterator into a Producer.
// End peeks one element ahead, so it stays free of visible side effects.
func FromIterator[T any](it Iterator[T]) Producer[T] {
	return &iteratorProducer[T]{it: it}
}

type iteratorProducer[T any] struct {
	it Iterator[T]

	peeked bool
	has    bool
	value  T
}

func (p *iteratorProducer[T]) End() bool {
	if !p.peeked {
		p.has = p.it.Next()
		if p.has {
			p.value = p.it.Value()
		}
		p.peeked = true
	}
	return !p.has
}

func (p *iteratorProducer[T]) Next() (T, bool, error) {
	var zero T
	if p.End() {
		return zero, false, p.it.Err()
	}
	v := p.value
	p.value, p.peeked, p.has = zero, false, false
	return v, true, nil
}

func (p *iteratorProducer[T]) Err() error {
	return p.it.Err()
}

func (p *iteratorProducer[T]) Close() error {
	return p.it.Close()
}
