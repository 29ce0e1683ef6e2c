package stream_test

import "github.com/adamluzsi/rdfstream/stream"

// spyProducer yields Values in order and records how it was used.
type spyProducer[T any] struct {
	Values []T
	// FailAt makes Next return Err instead of the element at that index.
	FailAt int
	Err    error
	// EndLies makes End always report more elements.
	EndLies bool

	index      int
	EndCalls   int
	NextCalls  int
	CloseCalls int
}

var _ stream.Producer[int] = &spyProducer[int]{}

func (p *spyProducer[T]) End() bool {
	p.EndCalls++
	if p.EndLies {
		return false
	}
	return len(p.Values) <= p.index
}

func (p *spyProducer[T]) Next() (T, bool, error) {
	p.NextCalls++
	var zero T
	if p.Err != nil && p.index == p.FailAt {
		return zero, false, p.Err
	}
	if len(p.Values) <= p.index {
		return zero, false, nil
	}
	v := p.Values[p.index]
	p.index++
	return v, true, nil
}

func (p *spyProducer[T]) Close() error {
	p.CloseCalls++
	return nil
}

type closableRecord struct {
	ID     int
	Closed bool
}

func (r *closableRecord) Close() error {
	r.Closed = true
	return nil
}
