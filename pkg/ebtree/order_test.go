package ebtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedTraversalAscendsOverRandomInserts(t *testing.T) {
	r := NewRoot[uint32]()
	rng := rand.New(rand.NewSource(1))

	const n = 500
	keys := make([]uint32, n)
	cells := make([]Cell[uint32], n)
	for i := range cells {
		keys[i] = rng.Uint32()
		r.Insert(&cells[i], keys[i])
	}

	var prev uint32
	seen := 0
	for c := r.First(); c != nil; c = c.Next() {
		if seen > 0 {
			require.LessOrEqual(t, prev, c.Key)
		}
		prev = c.Key
		seen++
	}
	require.Equal(t, n, seen)
	require.Equal(t, n, r.Count())
}

func TestLastMatchesReverseOfFirst(t *testing.T) {
	r := NewRoot[uint64]()
	cells := make([]Cell[uint64], 50)
	for i := range cells {
		r.Insert(&cells[i], uint64(i))
	}

	var forward []uint64
	for c := r.First(); c != nil; c = c.Next() {
		forward = append(forward, c.Key)
	}

	var backward []uint64
	for c := r.Last(); c != nil; c = c.Prev() {
		backward = append(backward, c.Key)
	}

	require.Len(t, backward, len(forward))
	for i, k := range forward {
		require.Equal(t, k, backward[len(backward)-1-i])
	}
}

func TestEmptyRootTraversal(t *testing.T) {
	r := NewRoot[uint32]()
	require.True(t, r.Empty())
	require.Nil(t, r.First())
	require.Nil(t, r.Last())
	require.Equal(t, 0, r.Count())
}

func TestRangeStopsEarly(t *testing.T) {
	r := NewRoot[uint32]()
	cells := make([]Cell[uint32], 10)
	for i := range cells {
		r.Insert(&cells[i], uint32(i))
	}

	var visited int
	r.Range(func(c *Cell[uint32]) bool {
		visited++
		return c.Key < 3
	})
	require.Equal(t, 4, visited)
}

func TestNewFromSliceBuildsOrderedTree(t *testing.T) {
	keys := []uint32{50, 10, 30, 20, 40}
	cells := make([]Cell[uint32], len(keys))

	r := NewFromSlice(false, keys, cells)
	require.Equal(t, len(keys), r.Count())

	var got []uint32
	for c := r.First(); c != nil; c = c.Next() {
		got = append(got, c.Key)
	}
	require.Equal(t, []uint32{10, 20, 30, 40, 50}, got)
}

func TestNewFromSliceUniqueRejectsDuplicateKeys(t *testing.T) {
	keys := []uint32{1, 1, 2}
	cells := make([]Cell[uint32], len(keys))

	r := NewFromSlice(true, keys, cells)
	require.Equal(t, 2, r.Count())
	require.True(t, r.Unique())
}

func TestNewFromSlicePanicsOnLengthMismatch(t *testing.T) {
	keys := []uint32{1, 2, 3}
	cells := make([]Cell[uint32], 2)

	require.Panics(t, func() {
		NewFromSlice(false, keys, cells)
	})
}
