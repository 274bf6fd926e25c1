package ebtreesvc

import (
	"testing"

	"github.com/stretchr/testify/require"

	pb "github.com/nainya/ebtree/proto/ebtree"
)

func TestCreateTreeRejectsDuplicateName(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.CreateTree("t", pb.KeyKindU32, false))
	require.Error(t, s.CreateTree("t", pb.KeyKindU32, false))
}

func TestCreateTreeRejectsUnknownKind(t *testing.T) {
	s := NewStore()
	require.Error(t, s.CreateTree("t", pb.KeyKind("bogus"), false))
}

func TestInsertLookupDeleteAcrossAllKinds(t *testing.T) {
	kinds := []pb.KeyKind{pb.KeyKindU32, pb.KeyKindS32, pb.KeyKindU64, pb.KeyKindS64}
	for _, kind := range kinds {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			s := NewStore()
			require.NoError(t, s.CreateTree("t", kind, false))

			inserted, _, err := s.Insert("t", -5, []byte("payload"))
			require.NoError(t, err)
			require.True(t, inserted)

			_, payload, found, err := s.Lookup("t", -5, pb.LookupEQ)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, "payload", string(payload))

			deleted, err := s.Delete("t", -5)
			require.NoError(t, err)
			require.True(t, deleted)

			_, _, found, err = s.Lookup("t", -5, pb.LookupEQ)
			require.NoError(t, err)
			require.False(t, found)
		})
	}
}

func TestUniqueTreeRejectsDuplicateKeyAndReturnsExisting(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.CreateTree("ids", pb.KeyKindU64, true))

	inserted, _, err := s.Insert("ids", 1, []byte("a"))
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, existing, err := s.Insert("ids", 1, []byte("b"))
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, "a", string(existing))
}

func TestLookupGELEAcrossSignedKind(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.CreateTree("deltas", pb.KeyKindS32, false))

	for _, key := range []int64{-20, -5, 0, 5, 20} {
		_, _, err := s.Insert("deltas", key, nil)
		require.NoError(t, err)
	}

	key, _, found, err := s.Lookup("deltas", -3, pb.LookupGE)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(0), key)

	key, _, found, err = s.Lookup("deltas", -3, pb.LookupLE)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(-5), key)
}

func TestRangeVisitsInAscendingKeyOrder(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.CreateTree("r", pb.KeyKindU32, false))
	for _, key := range []int64{30, 10, 20} {
		_, _, err := s.Insert("r", key, nil)
		require.NoError(t, err)
	}

	var got []int64
	err := s.Range("r", func(key int64, payload []byte) bool {
		got = append(got, key)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, []int64{10, 20, 30}, got)
}

func TestOperationsOnMissingTreeError(t *testing.T) {
	s := NewStore()

	_, _, err := s.Insert("nope", 1, nil)
	require.Error(t, err)

	_, _, _, err = s.Lookup("nope", 1, pb.LookupEQ)
	require.Error(t, err)

	_, err = s.Delete("nope", 1)
	require.Error(t, err)

	_, err = s.Count("nope")
	require.Error(t, err)
}

func TestTreeNamesListsAllCreatedTrees(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.CreateTree("a", pb.KeyKindU32, false))
	require.NoError(t, s.CreateTree("b", pb.KeyKindU64, false))

	names := s.TreeNames()
	require.ElementsMatch(t, []string{"a", "b"}, names)
}
