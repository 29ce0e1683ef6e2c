package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	uuid "github.com/satori/go.uuid"
	"go.llib.dev/testcase"

	"github.com/adamluzsi/rdfstream/internal/fixtures"
	"github.com/adamluzsi/rdfstream/nodestream"
	"github.com/adamluzsi/rdfstream/sources"
	"github.com/adamluzsi/rdfstream/statement"
	"github.com/adamluzsi/rdfstream/stream"
	"github.com/adamluzsi/rdfstream/stream/streamcontracts"
)

func newStore(tb testing.TB) *sources.Store {
	path := filepath.Join(os.TempDir(), uuid.NewV4().String())
	store, err := sources.Open(path)
	if err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() {
		if err := store.Close(); err != nil {
			tb.Error(err)
		}
		if err := os.Remove(path); err != nil {
			tb.Error(err)
		}
	})
	return store
}

func TestStore(t *testing.T) {
	s := testcase.NewSpec(t)

	store := testcase.Let(s, func(t *testcase.T) *sources.Store {
		return newStore(t)
	})
	bucket := testcase.Let(s, func(t *testcase.T) string {
		return t.Random.StringNWithCharset(8, "abcdefghijklmnopqrstuvwxyz")
	})

	s.When("the bucket does not exist", func(s *testcase.Spec) {
		s.Then("opening its nodes fails", func(t *testcase.T) {
			_, err := store.Get(t).Nodes(bucket.Get(t))
			t.Must.ErrorIs(sources.ErrBucketNotFound, err)
		})
	})

	s.When("nodes are appended", func(s *testcase.Spec) {
		nodes := testcase.Let(s, func(t *testcase.T) []statement.Node {
			return fixtures.Nodes(t.Random.IntB(1, 10))
		})
		s.Before(func(t *testcase.T) {
			t.Must.NoError(store.Get(t).Append(bucket.Get(t), nodes.Get(t)...))
		})

		s.Then("they are read back in insertion order", func(t *testcase.T) {
			seq, err := store.Get(t).Nodes(bucket.Get(t))
			t.Must.NoError(err)
			st, err := stream.New[statement.Node](seq)
			t.Must.NoError(err)
			got, err := stream.Collect(st)
			t.Must.NoError(err)
			t.Must.Equal(nodes.Get(t), got)
		})

		s.Then("later appends continue the sequence", func(t *testcase.T) {
			more := fixtures.Nodes(2)
			t.Must.NoError(store.Get(t).Append(bucket.Get(t), more...))

			seq, err := store.Get(t).Nodes(bucket.Get(t))
			t.Must.NoError(err)
			st, err := stream.New[statement.Node](seq)
			t.Must.NoError(err)
			got, err := stream.Collect(st)
			t.Must.NoError(err)
			t.Must.Equal(append(append([]statement.Node{}, nodes.Get(t)...), more...), got)
		})

		s.Then("they can fill a statement template", func(t *testcase.T) {
			seq, err := store.Get(t).Nodes(bucket.Get(t))
			t.Must.NoError(err)
			st, err := nodestream.New(seq, fixtures.Template(statement.Object), statement.Object)
			t.Must.NoError(err)
			got, err := stream.Collect(st)
			t.Must.NoError(err)
			t.Must.Equal(len(nodes.Get(t)), len(got))
			for i, stmt := range got {
				t.Must.Equal(nodes.Get(t)[i], stmt.Object)
			}
		})

		s.Then("closing the sequence twice is harmless", func(t *testcase.T) {
			seq, err := store.Get(t).Nodes(bucket.Get(t))
			t.Must.NoError(err)
			t.Must.NoError(seq.Close())
			t.Must.NoError(seq.Close())
			t.Must.True(seq.End())
		})
	})
}

func TestBoltNodes_producerContract(t *testing.T) {
	store := newStore(t)
	const bucket = "contract"
	if err := store.Append(bucket, fixtures.Nodes(5)...); err != nil {
		t.Fatal(err)
	}
	streamcontracts.Producer[statement.Node](func(tb testing.TB) stream.Producer[statement.Node] {
		seq, err := store.Nodes(bucket)
		if err != nil {
			tb.Fatal(err)
		}
		return seq
	}).Test(t)
}
