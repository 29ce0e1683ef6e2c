package sources

import (
	"context"
	"database/sql"
	"io"

	"github.com/pkg/errors"

	"github.com/adamluzsi/rdfstream/statement"
)

// Rows is the part of *sql.Rows the row sequence needs.
type Rows interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...any) error
}

type RowScanner interface {
	Scan(...any) error
}

type RowMapper[T any] interface {
	Map(s RowScanner) (T, error)
}

type RowMapperFunc[T any] func(RowScanner) (T, error)

func (fn RowMapperFunc[T]) Map(s RowScanner) (T, error) { return fn(s) }

// SQLRows turns sql rows into a sequence,
// using the mapper to scan each row into a value.
func SQLRows[T any](rows Rows, mapper RowMapper[T]) *SQLRowsProducer[T] {
	return &SQLRowsProducer[T]{Rows: rows, Mapper: mapper}
}

// SQLRowsProducer reads one row ahead,
// because sql.Rows can only tell about the next row by advancing to it.
type SQLRowsProducer[T any] struct {
	Rows   Rows
	Mapper RowMapper[T]

	peeked bool
	has    bool
	value  T
	err    error
	closed bool
}

func (p *SQLRowsProducer[T]) End() bool {
	if p.closed || p.err != nil {
		return true
	}
	if !p.peeked {
		p.peeked = true
		p.has = p.Rows.Next()
		if p.has {
			v, err := p.Mapper.Map(p.Rows)
			if err != nil {
				p.err = errors.Wrap(err, "scanning row")
				p.has = false
			}
			p.value = v
		}
	}
	return !p.has
}

func (p *SQLRowsProducer[T]) Next() (T, bool, error) {
	var zero T
	if p.End() {
		return zero, false, p.err
	}
	v := p.value
	p.value, p.peeked, p.has = zero, false, false
	return v, true, nil
}

// Err returns the scanning or rows error that ended the sequence.
func (p *SQLRowsProducer[T]) Err() error {
	if p.err != nil {
		return p.err
	}
	return errors.WithStack(p.Rows.Err())
}

func (p *SQLRowsProducer[T]) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.Rows.Close()
}

// ScanNode reads a row with a single column holding a node in N-Triples term syntax.
var ScanNode RowMapperFunc[statement.Node] = func(s RowScanner) (statement.Node, error) {
	var token string
	if err := s.Scan(&token); err != nil {
		return statement.Node{}, err
	}
	return statement.ParseNode(token)
}

// QueryNodes runs the query and returns its first column as a node sequence.
func QueryNodes(ctx context.Context, db *sql.DB, query string, args ...any) (*SQLRowsProducer[statement.Node], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying nodes")
	}
	return SQLRows[statement.Node](rows, ScanNode), nil
}
