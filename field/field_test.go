package field

import (
	"testing"

	"github.com/jackhall/datapy/index"
	"github.com/stretchr/testify/require"
)

func TestFieldRoundTrip(t *testing.T) {
	f := Of([]int{10, 20, 30})
	require.Equal(t, 3, f.Len())

	value, ok, err := f.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 20, value)

	require.NoError(t, f.Set(1, 25))
	value, ok, err = f.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 25, value)

	require.NoError(t, f.SetNull(1))
	_, ok, err = f.Get(1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFieldNeverGrowsOnWrite(t *testing.T) {
	f := Of([]int{1, 2})
	err := f.Set(2, 3)
	require.ErrorIs(t, err, index.ErrNotFound)
	err = f.SetNull(-3)
	require.ErrorIs(t, err, index.ErrNotFound)
	require.Equal(t, 2, f.Len())
}

func TestFieldMappingKeys(t *testing.T) {
	ix, err := index.MappingOf([]string{"x", "y"}, []int{1, 0})
	require.NoError(t, err)
	f, err := New[string](ix, FromSlice([]float64{1.5, 2.5}))
	require.NoError(t, err)

	value, ok, err := f.Get("x")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2.5, value)

	_, _, err = f.Get("z")
	require.ErrorIs(t, err, index.ErrNotFound)
}

func TestNewRejectsStrayPositions(t *testing.T) {
	ix, err := index.MappingOf([]string{"a"}, []int{5})
	require.NoError(t, err)
	_, err = New[string](ix, FromSlice([]int{1, 2}))
	require.ErrorIs(t, err, index.ErrDomainMismatch)
}

func TestMapIsDeferred(t *testing.T) {
	calls := 0
	f := Of([]int{1, 2, 3}).Map(func(v int) int {
		calls++
		return v * 10
	})
	require.Equal(t, 0, calls, "map must not evaluate before a read")

	value, ok, err := f.Get(2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 30, value)
	require.Equal(t, 1, calls)
}

func TestMapAssociativity(t *testing.T) {
	g := func(v int) int { return v + 1 }
	h := func(v int) int { return v * 2 }

	base := Of([]int{3, 7})
	require.NoError(t, base.SetNull(1))

	chained := base.Map(g).Map(h)
	fused := base.Map(func(v int) int { return h(g(v)) })

	for _, key := range base.Keys() {
		cv, cok, err := chained.Get(key)
		require.NoError(t, err)
		fv, fok, err := fused.Get(key)
		require.NoError(t, err)
		require.Equal(t, cok, fok)
		require.Equal(t, cv, fv)
	}

	// Both chains propagate the null unchanged.
	_, ok, err := chained.Get(1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMapNeverObservesNull(t *testing.T) {
	f := Of([]string{"a", "b"})
	require.NoError(t, f.SetNull(0))
	mapped := f.Map(func(v string) string {
		require.NotEmpty(t, v, "map saw a null")
		return v + "!"
	})
	_, ok, err := mapped.Get(0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMapBranchesAreIndependent(t *testing.T) {
	base := Of([]int{1})
	double := base.Map(func(v int) int { return v * 2 })
	triple := base.Map(func(v int) int { return v * 3 })

	dv, _, err := double.Get(0)
	require.NoError(t, err)
	tv, _, err := triple.Get(0)
	require.NoError(t, err)
	require.Equal(t, 2, dv)
	require.Equal(t, 3, tv)
}

func TestWriteVisibleThroughSharedStorage(t *testing.T) {
	base := Of([]int{1, 2})
	view := base.Map(func(v int) int { return v * 10 })

	// Writing through the base is visible through the mapped view, which
	// shares storage and applies its map at read time.
	require.NoError(t, base.Set(0, 5))
	value, ok, err := view.Get(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 50, value)

	// Writing through the view stores the value raw.
	require.NoError(t, view.Set(1, 7))
	value, ok, err = base.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7, value)
	value, _, err = view.Get(1)
	require.NoError(t, err)
	require.Equal(t, 70, value)
}

func TestFilterCountsMatchingValues(t *testing.T) {
	f := Of([]int{1, 2, 3, 4, 5})
	require.NoError(t, f.SetNull(3)) // the value 4 becomes null

	even, err := f.Filter(func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	require.Equal(t, 1, even.Len()) // only 2 survives: 4 is null now
	require.Equal(t, []int{1}, even.Keys())

	value, ok, err := even.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, value)

	_, _, err = even.Get(0)
	require.ErrorIs(t, err, index.ErrNotFound)
}

func TestFilterAfterMap(t *testing.T) {
	f := Of([]int{1, 2, 3}).Map(func(v int) int { return v * 10 })
	big, err := f.Filter(func(v int) bool { return v >= 20 })
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, big.Keys())

	value, _, err := big.Get(2)
	require.NoError(t, err)
	require.Equal(t, 30, value)
}

func TestResolveFlattens(t *testing.T) {
	f := Of([]int{5, 6, 7, 8}).Map(func(v int) int { return v + 1 })
	odd, err := f.Filter(func(v int) bool { return v%2 == 1 })
	require.NoError(t, err)

	resolved, err := odd.Resolve()
	require.NoError(t, err)
	require.Equal(t, odd.Keys(), resolved.Keys())
	for _, key := range odd.Keys() {
		want, wantOK, err := odd.Get(key)
		require.NoError(t, err)
		got, gotOK, err := resolved.Get(key)
		require.NoError(t, err)
		require.Equal(t, wantOK, gotOK)
		require.Equal(t, want, got)
	}

	// The resolved field owns its storage: writes to the original no
	// longer show through.
	require.NoError(t, f.Set(1, 100))
	value, _, err := resolved.Get(1)
	require.NoError(t, err)
	require.Equal(t, 7, value)
}

func TestResolveIdempotent(t *testing.T) {
	f := Of([]int{3, 1, 2}).Map(func(v int) int { return -v })
	require.NoError(t, f.SetNull(2))

	once, err := f.Resolve()
	require.NoError(t, err)
	twice, err := once.Resolve()
	require.NoError(t, err)

	require.Equal(t, once.Keys(), twice.Keys())
	for _, key := range once.Keys() {
		av, aok, err := once.Get(key)
		require.NoError(t, err)
		bv, bok, err := twice.Get(key)
		require.NoError(t, err)
		require.Equal(t, aok, bok)
		require.Equal(t, av, bv)
	}
	require.True(t, index.Equal[int](once.Index(), twice.Index()))
}

func TestResolvePreservesNonIntegerKeys(t *testing.T) {
	ix, err := index.MappingOf([]string{"c", "a", "b"}, []int{2, 0, 1})
	require.NoError(t, err)
	f, err := New[string](ix, FromSlice([]int{10, 20, 30}))
	require.NoError(t, err)

	resolved, err := f.Resolve()
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, resolved.Keys())

	value, _, err := resolved.Get("a")
	require.NoError(t, err)
	require.Equal(t, 10, value)
}

func TestUpdatePartialOverlap(t *testing.T) {
	left, err := New[string](
		index.NewMapping(map[string]int{"a": 0, "b": 1, "c": 2}),
		FromSlice([]int{1, 2, 3}))
	require.NoError(t, err)
	right, err := New[string](
		index.NewMapping(map[string]int{"b": 0, "d": 1}),
		FromSlice([]int{20, 40}))
	require.NoError(t, err)
	require.NoError(t, right.SetNull("d"))

	updated, err := left.Update(right)
	require.NoError(t, err)
	require.Equal(t, 3, updated.Len())

	value, _, err := updated.Get("a")
	require.NoError(t, err)
	require.Equal(t, 1, value)
	value, _, err = updated.Get("b")
	require.NoError(t, err)
	require.Equal(t, 20, value)
	// d is unique to the other side and must not appear
	_, _, err = updated.Get("d")
	require.ErrorIs(t, err, index.ErrNotFound)

	// Update owns its storage; the original is untouched.
	value, _, err = left.Get("b")
	require.NoError(t, err)
	require.Equal(t, 2, value)
}

func TestUpdateCopiesNulls(t *testing.T) {
	left := Of([]int{1, 2})
	right := Of([]int{9, 9})
	require.NoError(t, right.SetNull(0))

	updated, err := left.Update(right)
	require.NoError(t, err)
	_, ok, err := updated.Get(0)
	require.NoError(t, err)
	require.False(t, ok)
	value, _, err := updated.Get(1)
	require.NoError(t, err)
	require.Equal(t, 9, value)
}

func TestUnverifiedCompositionSurfacesOnRead(t *testing.T) {
	outer, err := index.MappingOf([]string{"ok", "bad"}, []int{0, 9})
	require.NoError(t, err)
	inner := index.Range(2)
	composed, err := index.Compose[string](outer, inner, false)
	require.NoError(t, err)

	_, err = New[string](composed, FromSlice([]int{1, 2}))
	require.ErrorIs(t, err, index.ErrNotFound)
}
