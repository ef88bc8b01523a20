package frame

import (
	"testing"

	"github.com/jackhall/datapy/index"
	"github.com/jackhall/datapy/test"
	"github.com/stretchr/testify/require"
)

func TestFromRecords(t *testing.T) {
	f, err := FromRecords(test.Context(t), []map[string]any{
		{"name": "ada", "age": 36},
		{"name": "bob"},
		{"name": "cleo", "age": 29, "city": "cairo"},
	})
	require.NoError(t, err)

	require.Equal(t, 3, f.Len())
	require.Equal(t, []string{"age", "city", "name"}, f.Fields().Names())

	value, ok, err := mustRow(t, f, 0).Value("age")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 36, value)

	// Missing record keys are nulls, not errors.
	_, ok, err = mustRow(t, f, 1).Value("age")
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, err = mustRow(t, f, 0).Value("city")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFromRecordsEmpty(t *testing.T) {
	f, err := FromRecords(test.Context(t), nil)
	require.NoError(t, err)
	require.Equal(t, 0, f.Len())
	require.Empty(t, f.Fields().Names())
}

func TestFromArrays(t *testing.T) {
	f, err := FromArrays(test.Context(t), []string{"x", "y"}, map[string][]any{
		"x": {1, 2, nil},
		"y": {"a", "b", "c"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, f.Len())
	require.Equal(t, []string{"x", "y"}, f.Fields().Names())

	_, ok, err := mustRow(t, f, 2).Value("x")
	require.NoError(t, err)
	require.False(t, ok)
	value, _, err := mustRow(t, f, 2).Value("y")
	require.NoError(t, err)
	require.Equal(t, "c", value)
}

func TestFromArraysValidation(t *testing.T) {
	_, err := FromArrays(test.Context(t), []string{"x"}, map[string][]any{
		"x": {1}, "y": {2},
	})
	require.ErrorIs(t, err, index.ErrConstruction)

	_, err = FromArrays(test.Context(t), []string{"x", "y"}, map[string][]any{
		"x": {1, 2}, "y": {1},
	})
	require.ErrorIs(t, err, index.ErrConstruction)

	_, err = FromArrays(test.Context(t), []string{"z"}, map[string][]any{
		"x": {1},
	})
	require.ErrorIs(t, err, index.ErrConstruction)
}
