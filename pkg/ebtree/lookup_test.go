package ebtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSparseTree(t *testing.T) (*Root[uint32], []*Cell[uint32]) {
	t.Helper()
	r := NewUniqueRoot[uint32]()
	keys := []uint32{10, 20, 30, 40, 50}
	cells := make([]Cell[uint32], len(keys))
	owners := make([]*Cell[uint32], len(keys))
	for i, k := range keys {
		r.Insert(&cells[i], k)
		owners[i] = &cells[i]
	}
	return r, owners
}

func TestLookupGEExactAndBetween(t *testing.T) {
	r, _ := buildSparseTree(t)

	c := r.LookupGE(30)
	require.NotNil(t, c)
	require.Equal(t, uint32(30), c.Key)

	c = r.LookupGE(31)
	require.NotNil(t, c)
	require.Equal(t, uint32(40), c.Key)

	c = r.LookupGE(51)
	require.Nil(t, c)

	c = r.LookupGE(0)
	require.NotNil(t, c)
	require.Equal(t, uint32(10), c.Key)
}

func TestLookupLEExactAndBetween(t *testing.T) {
	r, _ := buildSparseTree(t)

	c := r.LookupLE(30)
	require.NotNil(t, c)
	require.Equal(t, uint32(30), c.Key)

	c = r.LookupLE(29)
	require.NotNil(t, c)
	require.Equal(t, uint32(20), c.Key)

	c = r.LookupLE(9)
	require.Nil(t, c)

	c = r.LookupLE(1000)
	require.NotNil(t, c)
	require.Equal(t, uint32(50), c.Key)
}

func TestLookupGETiesToOldestDuplicate(t *testing.T) {
	r := NewRoot[uint32]()
	cells := make([]Cell[uint32], 3)
	for i := range cells {
		r.Insert(&cells[i], 100)
	}
	c := r.LookupGE(100)
	require.Same(t, &cells[0], c)
}

// TestLookupLETiesToNewestDuplicate exercises dupAppend's right-spine
// threading: the rightmost cell in a duplicate group (what LookupLE
// ties to) is always the most recently inserted one, for any number
// of duplicates.
func TestLookupLETiesToNewestDuplicate(t *testing.T) {
	r := NewRoot[uint32]()
	cells := make([]Cell[uint32], 4)
	for i := range cells {
		r.Insert(&cells[i], 100)
	}
	c := r.LookupLE(100)
	require.Same(t, &cells[3], c)
}

func TestUniqueRootRejectsDuplicateInsert(t *testing.T) {
	r := NewUniqueRoot[uint32]()
	var a, b Cell[uint32]
	a.Value = "first"
	b.Value = "second"

	got := r.Insert(&a, 5)
	require.Same(t, &a, got)

	got = r.Insert(&b, 5)
	require.Same(t, &a, got, "Insert returns the cell already holding the key")
	require.False(t, b.InTree())
	require.Equal(t, 1, r.Count())
}
