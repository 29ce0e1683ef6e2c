package statement

import (
	"sync"

	"github.com/adamluzsi/rdfstream/internal/errorkit"
)

const ErrAllocation errorkit.Error = "statement allocation failed"

// Allocator creates new statements from a prototype.
// It is passed to the components that produce statements,
// so allocation policies can be scoped per producer.
type Allocator interface {
	Clone(Statement) (Statement, error)
}

type AllocatorFunc func(Statement) (Statement, error)

func (fn AllocatorFunc) Clone(s Statement) (Statement, error) { return fn(s) }

// DefaultAllocator clones without any limit.
var DefaultAllocator Allocator = AllocatorFunc(func(s Statement) (Statement, error) {
	return s.Clone(), nil
})

// Quota is an Allocator that refuses to clone more than Limit statements.
type Quota struct {
	Limit int

	m    sync.Mutex
	used int
}

func (q *Quota) Clone(s Statement) (Statement, error) {
	q.m.Lock()
	defer q.m.Unlock()
	if q.Limit <= q.used {
		return Statement{}, ErrAllocation.F("quota of %d statements is used up", q.Limit)
	}
	q.used++
	return s.Clone(), nil
}

// Used returns the number of statements allocated so far.
func (q *Quota) Used() int {
	q.m.Lock()
	defer q.m.Unlock()
	return q.used
}
