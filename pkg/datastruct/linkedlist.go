package datastruct

import (
	"iter"

	"github.com/adamluzsi/rdfstream/stream"
)

// LinkedList is a doubly linked list.
// Remove and Contains compare elements with Equals when it is set,
// otherwise with the == operator, which panics for incomparable element types.
type LinkedList[T any] struct {
	Equals func(a, b T) bool

	head   *llElem[T]
	tail   *llElem[T]
	length int

	// front and back only move outwards, so pos follows list order.
	front, back int64
}

type llElem[T any] struct {
	data    T
	pos     int64
	prev    *llElem[T]
	next    *llElem[T]
	removed bool
}

func (ll *LinkedList[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if ll == nil {
			return
		}
		var index int
		for current := ll.head; current != nil; current = current.next {
			if !yield(index, current.data) {
				return
			}
			index++
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for _, v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Append adds elements to the end of the list.
func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v, pos: ll.back}
	ll.back++
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Prepend adds elements to the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		ll.prepend(vs[i])
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	ll.front--
	var (
		prevHead = ll.head
		newHead  = &llElem[T]{
			data: v,
			pos:  ll.front,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
}

// Length returns the number of elements in the list
func (ll *LinkedList[T]) Length() int {
	return ll.length
}

// Shift removes and returns the first element.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.unlink(first)
	return first.data, true
}

// Pop removes and returns the last element.
func (ll *LinkedList[T]) Pop() (T, bool) {
	if ll.tail == nil {
		var zero T
		return zero, false
	}
	last := ll.tail
	ll.unlink(last)
	return last.data, true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.length <= index {
		var zero T
		return zero, false
	}
	for i, v := range ll.Iter() {
		if i == index {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the first element equal to v.
// It reports false when no such element is in the list.
func (ll *LinkedList[T]) Remove(v T) bool {
	elem := ll.find(v)
	if elem == nil {
		return false
	}
	ll.unlink(elem)
	return true
}

func (ll *LinkedList[T]) Contains(v T) bool {
	return ll.find(v) != nil
}

// Clear removes every element.
func (ll *LinkedList[T]) Clear() {
	for elem := ll.head; elem != nil; {
		next := elem.next
		elem.prev, elem.next, elem.removed = nil, nil, true
		elem = next
	}
	ll.head, ll.tail, ll.length = nil, nil, 0
}

func (ll *LinkedList[T]) find(v T) *llElem[T] {
	for elem := ll.head; elem != nil; elem = elem.next {
		if ll.equal(elem.data, v) {
			return elem
		}
	}
	return nil
}

func (ll *LinkedList[T]) equal(a, b T) bool {
	if ll.Equals != nil {
		return ll.Equals(a, b)
	}
	return any(a) == any(b)
}

func (ll *LinkedList[T]) unlink(elem *llElem[T]) {
	if elem == ll.head {
		ll.head = elem.next
	}
	if elem.prev != nil {
		elem.prev.next = elem.next
	}
	if elem == ll.tail {
		ll.tail = elem.prev
	}
	if elem.next != nil {
		elem.next.prev = elem.prev
	}
	elem.removed = true
	ll.length--
}

// Producer returns a live view of the list as a stream.Producer.
// Elements appended while producing are seen, elements removed before they are reached are skipped.
// Elements prepended after production started are behind the cursor and never seen.
// Closing the producer leaves the list intact.
func (ll *LinkedList[T]) Producer() stream.Producer[T] {
	return &llProducer[T]{list: ll}
}

type llProducer[T any] struct {
	list    *LinkedList[T]
	last    *llElem[T]
	started bool
	closed  bool
}

func (p *llProducer[T]) peek() *llElem[T] {
	if p.closed {
		return nil
	}
	if !p.started {
		return p.list.head
	}
	if !p.last.removed {
		return p.last.next
	}
	for elem := p.list.head; elem != nil; elem = elem.next {
		if p.last.pos < elem.pos {
			return elem
		}
	}
	return nil
}

func (p *llProducer[T]) End() bool {
	return p.peek() == nil
}

func (p *llProducer[T]) Next() (T, bool, error) {
	elem := p.peek()
	if elem == nil {
		var zero T
		return zero, false, nil
	}
	p.started = true
	p.last = elem
	return elem.data, true, nil
}

func (p *llProducer[T]) Close() error {
	p.closed = true
	return nil
}
