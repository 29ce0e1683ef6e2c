package statement_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"github.com/adamluzsi/rdfstream/internal/fixtures"
	"github.com/adamluzsi/rdfstream/statement"
)

var fields = []statement.Field{statement.Subject, statement.Predicate, statement.Object}

func TestParseField(t *testing.T) {
	for raw, exp := range map[string]statement.Field{
		"subject":   statement.Subject,
		"S":         statement.Subject,
		"predicate": statement.Predicate,
		"p":         statement.Predicate,
		" Object ":  statement.Object,
		"o":         statement.Object,
	} {
		got, err := statement.ParseField(raw)
		require.NoError(t, err)
		require.Equal(t, exp, got)
		require.Equal(t, got, must(statement.ParseField(got.String())))
	}

	_, err := statement.ParseField("graph")
	require.ErrorIs(t, err, statement.ErrUnknownField)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestField_Valid(t *testing.T) {
	for _, f := range fields {
		require.True(t, f.Valid())
	}
	require.False(t, statement.Field(0).Valid())
	require.False(t, statement.Field(4).Valid())
}

func TestStatement(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := testcase.Let(s, func(t *testcase.T) statement.Statement {
		return fixtures.Statement()
	})
	field := testcase.Let(s, func(t *testcase.T) statement.Field {
		return random.Pick(t.Random, fields...)
	})

	s.Describe(".Set", func(s *testcase.Spec) {
		node := testcase.Let(s, func(t *testcase.T) statement.Node {
			return fixtures.Node()
		})

		s.Test("Get returns the node set at the field", func(t *testcase.T) {
			st := subject.Get(t)
			st.Set(field.Get(t), node.Get(t))
			t.Must.Equal(node.Get(t), st.Get(field.Get(t)))
		})

		s.Test("other fields are kept", func(t *testcase.T) {
			st := subject.Get(t)
			st.Set(field.Get(t), node.Get(t))
			for _, f := range fields {
				if f == field.Get(t) {
					continue
				}
				t.Must.Equal(subject.Get(t).Get(f), st.Get(f))
			}
		})

		s.Test("an undefined field panics", func(t *testcase.T) {
			st := subject.Get(t)
			out := assert.Panic(t, func() { st.Set(statement.Field(t.Random.IntB(4, 42)), node.Get(t)) })
			err, ok := out.(error)
			t.Must.True(ok)
			t.Must.ErrorIs(statement.ErrIllegalField, err)
		})
	})

	s.Test("Clone gives an independent copy", func(t *testcase.T) {
		cpy := subject.Get(t).Clone()
		t.Must.True(cpy.Equal(subject.Get(t)))
		cpy.Set(field.Get(t), statement.Literal("changed"))
		t.Must.False(cpy.Equal(subject.Get(t)))
	})

	s.Test("IsComplete is false with a blank field", func(t *testcase.T) {
		t.Must.True(subject.Get(t).IsComplete())
		t.Must.False(fixtures.Template(field.Get(t)).IsComplete())
	})

	s.Describe(".Match", func(s *testcase.Spec) {
		s.Test("the empty pattern matches everything", func(t *testcase.T) {
			t.Must.True(subject.Get(t).Match(statement.Statement{}))
		})

		s.Test("a pattern with the field fixed matches only that value", func(t *testcase.T) {
			var pattern statement.Statement
			pattern.Set(field.Get(t), subject.Get(t).Get(field.Get(t)))
			t.Must.True(subject.Get(t).Match(pattern))

			pattern.Set(field.Get(t), statement.Literal("something else"))
			t.Must.False(subject.Get(t).Match(pattern))
		})
	})

	s.Test("String is an N-Triples line", func(t *testcase.T) {
		st := statement.Statement{
			Subject:   statement.URI("urn:a"),
			Predicate: statement.URI("urn:b"),
			Object:    statement.Literal("c"),
		}
		t.Must.Equal(`<urn:a> <urn:b> "c" .`, st.String())
	})
}
