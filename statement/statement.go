// Package statement holds the record type carried by statement streams:
// an RDF triple made of three Node values.
package statement

import (
	"fmt"
	"strings"

	"github.com/adamluzsi/rdfstream/internal/errorkit"
)

const (
	ErrIllegalField errorkit.Error = "illegal statement field"
	ErrUnknownField errorkit.Error = "unknown statement field"
)

// Field names a node position of a Statement.
type Field uint

const (
	Subject Field = iota + 1
	Predicate
	Object
)

func (f Field) Valid() bool { return Subject <= f && f <= Object }

func (f Field) String() string {
	switch f {
	case Subject:
		return "subject"
	case Predicate:
		return "predicate"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Field(%d)", uint(f))
	}
}

// ParseField accepts the field name or its first letter.
func ParseField(raw string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "subject", "s":
		return Subject, nil
	case "predicate", "p":
		return Predicate, nil
	case "object", "o":
		return Object, nil
	default:
		return 0, ErrUnknownField.F("%q", raw)
	}
}

type Statement struct {
	Subject   Node `json:"subject"`
	Predicate Node `json:"predicate"`
	Object    Node `json:"object"`
}

// Clone returns an independent copy of the statement.
func (s Statement) Clone() Statement {
	return Statement{
		Subject:   s.Subject,
		Predicate: s.Predicate,
		Object:    s.Object,
	}
}

func (s Statement) Get(f Field) Node {
	switch f {
	case Subject:
		return s.Subject
	case Predicate:
		return s.Predicate
	case Object:
		return s.Object
	default:
		panic(ErrIllegalField.F("%d", uint(f)))
	}
}

// Set replaces the node at the given field.
// An undefined field is a programming error and panics.
func (s *Statement) Set(f Field, n Node) {
	switch f {
	case Subject:
		s.Subject = n
	case Predicate:
		s.Predicate = n
	case Object:
		s.Object = n
	default:
		panic(ErrIllegalField.F("%d", uint(f)))
	}
}

// IsComplete reports whether every field holds a node.
func (s Statement) IsComplete() bool {
	return !s.Subject.IsZero() && !s.Predicate.IsZero() && !s.Object.IsZero()
}

// Match reports whether the statement matches the pattern.
// Zero nodes in the pattern match anything.
func (s Statement) Match(pattern Statement) bool {
	for _, f := range []Field{Subject, Predicate, Object} {
		want := pattern.Get(f)
		if want.IsZero() {
			continue
		}
		if !want.Equal(s.Get(f)) {
			return false
		}
	}
	return true
}

func (s Statement) Equal(oth Statement) bool { return s == oth }

// String formats the statement as an N-Triples line without the line break.
func (s Statement) String() string {
	return fmt.Sprintf("%s %s %s .", s.Subject, s.Predicate, s.Object)
}
