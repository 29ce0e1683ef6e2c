package stream_test

import (
	"strings"
	"testing"

	"github.com/adamluzsi/rdfstream/stream"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	m := stream.Filter(func(s string) bool { return strings.HasPrefix(s, "a") })

	v, ok := m.Map("apple")
	require.True(t, ok)
	require.Equal(t, "apple", v)

	v, ok = m.Map("banana")
	require.False(t, ok)
	require.Empty(t, v)
}

func TestTransform(t *testing.T) {
	v, ok := stream.Transform(strings.ToUpper).Map("abc")
	require.True(t, ok)
	require.Equal(t, "ABC", v)
}

func TestChain(t *testing.T) {
	var calls []string
	m := stream.Chain[string](
		stream.MapperFunc[string](func(s string) (string, bool) {
			calls = append(calls, "first")
			return s + "!", true
		}),
		stream.Filter(func(s string) bool {
			calls = append(calls, "second")
			return s != "drop!"
		}),
		stream.Transform(func(s string) string {
			calls = append(calls, "third")
			return strings.ToUpper(s)
		}),
	)

	v, ok := m.Map("keep")
	require.True(t, ok)
	require.Equal(t, "KEEP!", v)
	require.Equal(t, []string{"first", "second", "third"}, calls)

	calls = nil
	_, ok = m.Map("drop")
	require.False(t, ok)
	require.Equal(t, []string{"first", "second"}, calls, "suppression stops the chain")
}

func TestChain_withStream(t *testing.T) {
	st, err := stream.New[int](stream.Slice([]int{1, 2, 3, 4, 5, 6}))
	require.NoError(t, err)
	require.NoError(t, st.SetMap(stream.Chain[int](
		stream.Filter(func(n int) bool { return n%2 == 0 }),
		stream.Transform(func(n int) int { return n * 10 }),
	)))

	vs, err := stream.Collect(st)
	require.NoError(t, err)
	require.Equal(t, []int{20, 40, 60}, vs)
}
