// Package streamcontracts holds the behaviour every stream.Producer implementation is expected to have.
package streamcontracts

import (
	"testing"

	"github.com/adamluzsi/rdfstream/stream"
	"go.llib.dev/testcase"
)

// Producer is a contract for stream.Producer implementations.
// The factory must return a producer with at least one element.
type Producer[T any] func(tb testing.TB) stream.Producer[T]

func (c Producer[T]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like a stream producer", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) stream.Producer[T] {
			return c(t)
		})

		s.Then("it is not exhausted at the start", func(t *testcase.T) {
			t.Must.False(subject.Get(t).End())
			t.Must.NoError(subject.Get(t).Close())
		})

		s.Then("End can be asked repeatedly without consuming elements", func(t *testcase.T) {
			p := subject.Get(t)
			var count int
			for !p.End() {
				t.Must.False(p.End())
				t.Must.False(p.End())
				_, ok, err := p.Next()
				t.Must.NoError(err)
				t.Must.True(ok)
				count++
			}
			t.Must.True(0 < count)
			t.Must.NoError(p.Close())
		})

		s.Then("Next reports no element once the producer is exhausted", func(t *testcase.T) {
			p := subject.Get(t)
			for !p.End() {
				_, _, err := p.Next()
				t.Must.NoError(err)
			}
			_, ok, err := p.Next()
			t.Must.NoError(err)
			t.Must.False(ok)
			t.Must.True(p.End())
			t.Must.NoError(p.Close())
		})

		s.Then("Next alone drains the producer", func(t *testcase.T) {
			p := subject.Get(t)
			var count int
			for {
				_, ok, err := p.Next()
				t.Must.NoError(err)
				if !ok {
					break
				}
				count++
			}
			t.Must.True(0 < count)
			t.Must.NoError(p.Close())
		})

		s.Then("it can be released without being consumed", func(t *testcase.T) {
			t.Must.NoError(subject.Get(t).Close())
		})

		s.Then("values can be collected through a stream", func(t *testcase.T) {
			st, err := stream.New[T](subject.Get(t))
			t.Must.NoError(err)
			vs, err := stream.Collect(st)
			t.Must.NoError(err)
			t.Must.NotEmpty(vs)
		})
	})
}

func (c Producer[T]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Producer[T]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
