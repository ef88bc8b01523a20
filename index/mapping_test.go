package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMappingLookup(t *testing.T) {
	m := NewMapping(map[string]int{"a": 2, "b": 0, "c": 1})
	require.Equal(t, 3, m.Len())

	for key, want := range map[string]int{"a": 2, "b": 0, "c": 1} {
		require.True(t, m.Contains(key))
		pos, err := m.Find(key)
		require.NoError(t, err)
		require.Equal(t, want, pos)
	}

	require.False(t, m.Contains("d"))
	_, err := m.Find("d")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMappingCanonicalOrder(t *testing.T) {
	// The map-based constructor sorts keys by their serialized form.
	m := NewMapping(map[string]int{"pear": 0, "apple": 1, "fig": 2})
	require.Equal(t, []string{"apple", "fig", "pear"}, m.Keys())

	// Serialized integers sort numerically, negative values first.
	n := NewMapping(map[int]int{10: 0, -3: 1, 2: 2})
	require.Equal(t, []int{-3, 2, 10}, n.Keys())
}

func TestMappingOfPreservesOrder(t *testing.T) {
	m, err := MappingOf([]string{"z", "a", "m"}, []int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []string{"z", "a", "m"}, m.Keys())

	pos, err := m.Find("m")
	require.NoError(t, err)
	require.Equal(t, 2, pos)
}

func TestMappingOfRejectsInvalid(t *testing.T) {
	_, err := MappingOf([]string{"a", "a"}, []int{0, 1})
	require.ErrorIs(t, err, ErrConstruction)

	_, err = MappingOf([]string{"a"}, []int{0, 1})
	require.ErrorIs(t, err, ErrConstruction)
}

type accountID string

func (id accountID) IndexKey() []byte {
	return []byte("acct:" + id)
}

func TestMappingCustomKeyType(t *testing.T) {
	m := NewMapping(map[accountID]int{"beta": 1, "alpha": 0})
	require.Equal(t, []accountID{"alpha", "beta"}, m.Keys())

	pos, err := m.Find(accountID("beta"))
	require.NoError(t, err)
	require.Equal(t, 1, pos)
}
