package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualAcrossRepresentations(t *testing.T) {
	// A mapping and a composition that resolve identically are equal even
	// though their internals differ.
	direct, err := MappingOf([]string{"a", "b"}, []int{7, 5})
	require.NoError(t, err)

	outer, err := MappingOf([]string{"a", "b"}, []int{0, 1})
	require.NoError(t, err)
	inner, err := NewSequence([]int{7, 5})
	require.NoError(t, err)
	composed, err := Compose[string](outer, inner, true)
	require.NoError(t, err)

	require.True(t, Equal[string](direct, composed))
	require.True(t, Equal[string](composed, direct))
	require.Equal(t, Hash[string](direct), Hash[string](composed))
}

func TestEqualRespectsOrder(t *testing.T) {
	ab, err := MappingOf([]string{"a", "b"}, []int{0, 1})
	require.NoError(t, err)
	ba, err := MappingOf([]string{"b", "a"}, []int{1, 0})
	require.NoError(t, err)

	// Same (key, position) pairs in different canonical order: not equal,
	// but the order-independent hashes coincide.
	require.False(t, Equal[string](ab, ba))
	require.Equal(t, Hash[string](ab), Hash[string](ba))
}

func TestEqualDiffers(t *testing.T) {
	a, err := MappingOf([]string{"a", "b"}, []int{0, 1})
	require.NoError(t, err)
	b, err := MappingOf([]string{"a", "b"}, []int{0, 2})
	require.NoError(t, err)
	c, err := MappingOf([]string{"a"}, []int{0})
	require.NoError(t, err)

	require.False(t, Equal[string](a, b))
	require.False(t, Equal[string](a, c))
	require.NotEqual(t, Hash[string](a), Hash[string](b))
}

func TestHashEmpty(t *testing.T) {
	require.Equal(t, uint64(0), Hash[int](Range(0)))
}
