package gen_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/combigen/gen"
)

func exampleSpace() *gen.Generator {
	return gen.Must(gen.Concat(
		gen.OneOf("iris"),
		gen.Lit(" ").Then(gen.OneOf("versicolor", "virginica", "setosa")).Optional(),
	))
}

// TestAllMatchesGet: enumeration reproduces Get(i) for every i, in order,
// with exactly Size() distinct entries.
func TestAllMatchesGet(t *testing.T) {
	t.Parallel()

	g := gen.Must(gen.Concat(
		gen.Must(gen.Repeat(gen.Must(gen.Chars("xyz")), 1, 3)),
		gen.Lit("_"),
		gen.Digit().Optional(),
	))
	n, err := g.Len()
	require.NoError(t, err)
	require.Equal(t, (3+9+27)*11, n)

	seq, err := g.All()
	require.NoError(t, err)

	i := 0
	seen := make(map[string]struct{}, n)
	for s := range seq {
		want, err := g.GetUint64(uint64(i))
		require.NoError(t, err)
		require.Equal(t, want, s, "index %d", i)
		seen[s] = struct{}{}
		i++
	}
	require.Equal(t, n, i)
	require.Len(t, seen, n)
}

func TestAllIsRestartable(t *testing.T) {
	seq, err := exampleSpace().All()
	require.NoError(t, err)

	collect := func() []string {
		var out []string
		for s := range seq {
			out = append(out, s)
		}
		return out
	}
	want := []string{"iris versicolor", "iris virginica", "iris setosa", "iris"}
	require.Equal(t, want, collect())
	require.Equal(t, want, collect())

	// Breaking out of one range does not affect the next.
	for s := range seq {
		require.Equal(t, "iris versicolor", s)
		break
	}
	require.Equal(t, want, collect())
}

func TestValuesYieldsOwnedIndices(t *testing.T) {
	seq, err := gen.Digit().Values()
	require.NoError(t, err)

	var idx []*big.Int
	for i, s := range seq {
		require.Equal(t, string(rune('0'+i.Int64())), s)
		idx = append(idx, i)
	}
	require.Len(t, idx, 10)
	for k, i := range idx {
		require.Equal(t, int64(k), i.Int64())
	}
}

func TestAllEmptySpace(t *testing.T) {
	_, err := gen.OneOf().All()
	require.True(t, errors.Is(err, gen.ErrEmptySpace))
	_, err = gen.NewIterator(gen.OneOf())
	require.True(t, errors.Is(err, gen.ErrEmptySpace))
	_, err = gen.NewIterator(nil)
	require.True(t, errors.Is(err, gen.ErrNilGenerator))
}

func TestIterator(t *testing.T) {
	it, err := gen.NewIterator(exampleSpace())
	require.NoError(t, err)
	require.Nil(t, it.Index())

	var got []string
	for it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []string{"iris versicolor", "iris virginica", "iris setosa", "iris"}, got)
	require.Equal(t, int64(3), it.Index().Int64())
	require.False(t, it.Next())

	it.Reset()
	require.True(t, it.Next())
	require.Equal(t, "iris versicolor", it.Value())

	require.NoError(t, it.Seek(big.NewInt(2)))
	require.True(t, it.Next())
	require.Equal(t, "iris setosa", it.Value())
	require.Equal(t, int64(2), it.Index().Int64())

	err = it.Seek(big.NewInt(4))
	require.True(t, errors.Is(err, gen.ErrIndexOutOfRange))
}
