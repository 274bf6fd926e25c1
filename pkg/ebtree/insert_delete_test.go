package ebtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInsertDeleteRoundTrip inserts a random set of unique keys,
// deletes a random subset, and checks the survivors still traverse in
// order and the deleted cells report themselves as no longer in a
// tree.
func TestInsertDeleteRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := NewUniqueRoot[uint32]()

	const n = 300
	seen := make(map[uint32]bool, n)
	keys := make([]uint32, 0, n)
	cells := make([]Cell[uint32], n)
	for i := range cells {
		var k uint32
		for {
			k = rng.Uint32()
			if !seen[k] {
				break
			}
		}
		seen[k] = true
		keys = append(keys, k)
		got := r.Insert(&cells[i], k)
		require.Same(t, &cells[i], got)
	}
	require.Equal(t, n, r.Count())

	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	deleted := make(map[uint32]bool)
	for i := 0; i < n/2; i++ {
		k := cells[i].Key
		require.True(t, cells[i].InTree())
		cells[i].Delete()
		require.False(t, cells[i].InTree())
		deleted[k] = true
	}

	require.Equal(t, n-n/2, r.Count())

	var prev uint32
	count := 0
	for c := r.First(); c != nil; c = c.Next() {
		if count > 0 {
			require.Less(t, prev, c.Key)
		}
		require.False(t, deleted[c.Key])
		prev = c.Key
		count++
	}
	require.Equal(t, n-n/2, count)

	for k := range deleted {
		require.Nil(t, r.Lookup(k))
	}
}

// TestDeleteNoOpWhenNotInTree exercises the no-op path of Delete.
func TestDeleteNoOpWhenNotInTree(t *testing.T) {
	var c Cell[uint32]
	c.Delete()
	require.False(t, c.InTree())
}

// TestDeleteThenReinsert verifies a cell can be reused after removal.
func TestDeleteThenReinsert(t *testing.T) {
	r := NewRoot[uint32]()
	var a, b, c Cell[uint32]
	r.Insert(&a, 1)
	r.Insert(&b, 2)
	r.Insert(&c, 3)

	b.Delete()
	require.Equal(t, 2, r.Count())

	r.Insert(&b, 10)
	require.Equal(t, 3, r.Count())
	require.NotNil(t, r.Lookup(10))
}

// TestDeleteDualRoleCell targets the fast path in Delete where the
// removed cell's own node-half hosts its leaf's parent.
func TestDeleteDualRoleCell(t *testing.T) {
	r := NewRoot[uint32]()
	var a, b Cell[uint32]
	r.Insert(&a, 0)
	got := r.Insert(&b, 1)
	require.Same(t, &b, got)

	b.Delete()
	require.Equal(t, 1, r.Count())
	require.NotNil(t, r.Lookup(0))
	require.Nil(t, r.Lookup(1))
}
