// Package nodestream lifts a sequence of nodes into a stream of statements.
//
// Each node pulled from the sequence is placed into a copy of a statement template
// at the configured field, so a template like (A, ?, C) over the nodes [v1, v2]
// yields (A, v1, C) then (A, v2, C).
package nodestream

import (
	"context"

	"github.com/adamluzsi/rdfstream/internal/errorkit"
	"github.com/adamluzsi/rdfstream/internal/logger"
	"github.com/adamluzsi/rdfstream/statement"
	"github.com/adamluzsi/rdfstream/stream"
)

//go:generate mockgen -source nodestream.go -destination mocks_test.go -package nodestream_test

const ErrNilNodes errorkit.Error = "nodestream: nil node sequence"

// Nodes is the value sequence the adapter consumes.
// It follows the stream.Producer contract at the node level.
type Nodes interface {
	End() bool
	Next() (statement.Node, bool, error)
	Close() error
}

// New returns a stream of statements built from the nodes and the template.
// The returned stream owns nodes and closes them when it is closed.
// If the stream can not be built, nodes are closed before the error is returned.
// An undefined field is a programming error and panics before nodes are touched.
func New(nodes Nodes, template statement.Statement, field statement.Field, opts ...Option) (*stream.Stream[statement.Statement], error) {
	if !field.Valid() {
		panic(statement.ErrIllegalField.F("%d", uint(field)))
	}
	if nodes == nil {
		return nil, ErrNilNodes
	}
	c := newConfig(opts)
	p := &producer{
		nodes:    nodes,
		template: template.Clone(),
		field:    field,
		alloc:    c.Allocator,
		compat:   c.CompatibleExhaustion,
		ctx:      logger.ContextWith(c.Context, logger.Field("field", field.String())),
	}
	st, err := stream.New[statement.Statement](p, c.StreamOptions()...)
	if err != nil {
		return nil, errorkit.Merge(err, p.Close())
	}
	return st, nil
}

type producer struct {
	nodes    Nodes
	template statement.Statement
	field    statement.Field
	alloc    statement.Allocator
	compat   bool
	ctx      context.Context
}

func (p *producer) End() bool {
	return p.nodes.End()
}

func (p *producer) Next() (statement.Statement, bool, error) {
	node, ok, err := p.nodes.Next()
	if err != nil || !ok {
		return statement.Statement{}, false, err
	}
	s, err := p.alloc.Clone(p.template)
	if err != nil {
		logger.Debug(p.ctx, "dropping node, statement could not be allocated",
			logger.Field("node", node.String()),
			logger.ErrField(err))
		if p.compat {
			return statement.Statement{}, false, nil
		}
		return statement.Statement{}, false, statement.ErrAllocation.Wrap(err)
	}
	s.Set(p.field, node)
	return s, true, nil
}

// Err forwards the error of node sequences that report failures on exhaustion, like sql rows.
func (p *producer) Err() error {
	if ep, ok := p.nodes.(interface{ Err() error }); ok {
		return ep.Err()
	}
	return nil
}

func (p *producer) Close() error {
	return p.nodes.Close()
}
