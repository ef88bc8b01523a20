package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskPreservesOrder(t *testing.T) {
	m, err := MappingOf([]string{"d", "c", "b", "a"}, []int{0, 1, 2, 3})
	require.NoError(t, err)

	narrowed := Mask[string](m, func(key string) bool { return key != "c" })
	require.Equal(t, 3, narrowed.Len())
	require.Equal(t, []string{"d", "b", "a"}, narrowed.Keys())

	// Surviving keys resolve exactly as before.
	pos, err := narrowed.Find("b")
	require.NoError(t, err)
	require.Equal(t, 2, pos)

	require.False(t, narrowed.Contains("c"))
	_, err = narrowed.Find("c")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMaskAll(t *testing.T) {
	seq := Range(3)
	none := Mask[int](seq, func(int) bool { return false })
	require.Equal(t, 0, none.Len())
	_, err := none.Find(0)
	require.ErrorIs(t, err, ErrNotFound)

	all := Mask[int](seq, func(int) bool { return true })
	require.Equal(t, seq.Keys(), all.Keys())
}

func TestMaskOfMask(t *testing.T) {
	seq := Range(10)
	even := Mask[int](seq, func(key int) bool { return key%2 == 0 })
	small := Mask[int](even, func(key int) bool { return key < 6 })
	require.Equal(t, []int{0, 2, 4}, small.Keys())

	pos, err := small.Find(4)
	require.NoError(t, err)
	require.Equal(t, 4, pos)
}
