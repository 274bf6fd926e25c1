package ebtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoldUnfoldInt32RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := int32(rng.Uint32())
		require.Equal(t, v, UnfoldInt32(FoldInt32(v)))
	}
}

func TestFoldUnfoldInt64RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 1000; i++ {
		v := int64(rng.Uint64())
		require.Equal(t, v, UnfoldInt64(FoldInt64(v)))
	}
}

func TestFoldInt32PreservesSignedOrder(t *testing.T) {
	values := []int32{-100, -1, 0, 1, 100, -2147483648, 2147483647}
	folded := make([]uint32, len(values))
	for i, v := range values {
		folded[i] = FoldInt32(v)
	}

	sortedValues := append([]int32(nil), values...)
	sort.Slice(sortedValues, func(i, j int) bool { return sortedValues[i] < sortedValues[j] })

	sortedFolded := append([]uint32(nil), folded...)
	sort.Slice(sortedFolded, func(i, j int) bool { return sortedFolded[i] < sortedFolded[j] })

	for i, v := range sortedValues {
		require.Equal(t, FoldInt32(v), sortedFolded[i])
	}
}

func TestInt32RootOrdersNegativesBeforePositives(t *testing.T) {
	r := NewInt32Root()
	keys := []int32{5, -5, 0, -100, 100, -1}
	cells := make([]Int32Cell, len(keys))
	for i, k := range keys {
		r.Insert(&cells[i], k)
	}

	var got []int32
	for c := r.First(); c != nil; c = c.Next() {
		got = append(got, Int32Key(c))
	}
	require.Equal(t, []int32{-100, -5, -1, 0, 5, 100}, got)
}

func TestInt64RootLookupGEAcrossSignBoundary(t *testing.T) {
	r := NewInt64Root()
	keys := []int64{-10, -1, 0, 1, 10}
	cells := make([]Int64Cell, len(keys))
	for i, k := range keys {
		r.Insert(&cells[i], k)
	}

	c := r.LookupGE(-1)
	require.NotNil(t, c)
	require.Equal(t, int64(-1), Int64Key(c))

	c = r.LookupGE(2)
	require.NotNil(t, c)
	require.Equal(t, int64(10), Int64Key(c))

	c = r.LookupLE(-2)
	require.NotNil(t, c)
	require.Equal(t, int64(-10), Int64Key(c))
}

func TestInt32RootUniqueRejectsDuplicate(t *testing.T) {
	r := NewUniqueInt32Root()
	var a, b Int32Cell

	got := r.Insert(&a, -7)
	require.Same(t, &a, got)

	got = r.Insert(&b, -7)
	require.Same(t, &a, got)
	require.False(t, b.InTree())
}
