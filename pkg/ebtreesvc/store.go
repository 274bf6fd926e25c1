// Package ebtreesvc adapts pkg/ebtree into a set of named,
// concurrency-safe trees, the storage layer behind cmd/ebtreed.
package ebtreesvc

import (
	"fmt"
	"sync"

	"github.com/nainya/ebtree/pkg/ebtree"
	pb "github.com/nainya/ebtree/proto/ebtree"
)

// keyedTree is one named tree at a fixed key width. K is always
// uint32 or uint64; signed trees fold their wire key into the same
// width before it reaches here, the way ebtree.Int32Root/Int64Root do
// internally (see foldKey/unfoldKey below).
type keyedTree[K ebtree.Unsigned] struct {
	mu   sync.Mutex
	root *ebtree.Root[K]
}

func newKeyedTree[K ebtree.Unsigned](unique bool) *keyedTree[K] {
	if unique {
		return &keyedTree[K]{root: ebtree.NewUniqueRoot[K]()}
	}
	return &keyedTree[K]{root: ebtree.NewRoot[K]()}
}

func (t *keyedTree[K]) insert(key K, payload []byte) (inserted bool, existing []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := &ebtree.Cell[K]{Value: payload}
	result := t.root.Insert(c, key)
	if result != c {
		return false, result.Value.([]byte)
	}
	return true, nil
}

func (t *keyedTree[K]) lookup(key K) ([]byte, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.root.Lookup(key)
	if c == nil {
		return nil, false
	}
	return c.Value.([]byte), true
}

func (t *keyedTree[K]) lookupGE(key K) (K, []byte, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.root.LookupGE(key)
	if c == nil {
		var zero K
		return zero, nil, false
	}
	return c.Key, c.Value.([]byte), true
}

func (t *keyedTree[K]) lookupLE(key K) (K, []byte, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.root.LookupLE(key)
	if c == nil {
		var zero K
		return zero, nil, false
	}
	return c.Key, c.Value.([]byte), true
}

func (t *keyedTree[K]) delete(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.root.Lookup(key)
	if c == nil {
		return false
	}
	c.Delete()
	return true
}

func (t *keyedTree[K]) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root.Count()
}

func (t *keyedTree[K]) rangeAll(fn func(key K, payload []byte) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root.Range(func(c *ebtree.Cell[K]) bool {
		return fn(c.Key, c.Value.([]byte))
	})
}

// entry bundles one named tree with the metadata the service reports
// back through Stats, without caring which key width it holds.
type entry struct {
	kind   pb.KeyKind
	unique bool
	u32    *keyedTree[uint32] // holds both u32 and s32 (s32 folds its key, see foldKey)
	u64    *keyedTree[uint64] // holds both u64 and s64
}

// Store is a registry of named trees, safe for concurrent use from
// multiple gRPC handlers.
type Store struct {
	mu    sync.RWMutex
	trees map[string]*entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{trees: make(map[string]*entry)}
}

// CreateTree registers a new named tree. It fails if the name is
// already taken or the key kind is not one of the four supported
// kinds.
func (s *Store) CreateTree(name string, kind pb.KeyKind, unique bool) error {
	switch kind {
	case pb.KeyKindU32, pb.KeyKindS32, pb.KeyKindU64, pb.KeyKindS64:
	default:
		return fmt.Errorf("unknown key kind %q", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.trees[name]; exists {
		return fmt.Errorf("tree %q already exists", name)
	}

	e := &entry{kind: kind, unique: unique}
	switch kind {
	case pb.KeyKindU32, pb.KeyKindS32:
		e.u32 = newKeyedTree[uint32](unique)
	case pb.KeyKindU64, pb.KeyKindS64:
		e.u64 = newKeyedTree[uint64](unique)
	}
	s.trees[name] = e
	return nil
}

func (s *Store) get(name string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.trees[name]
	if !ok {
		return nil, fmt.Errorf("tree %q does not exist", name)
	}
	return e, nil
}

// foldKey converts a wire (always-int64) key into the tree's native
// storage key for its kind.
func foldKey(kind pb.KeyKind, key int64) uint64 {
	switch kind {
	case pb.KeyKindU32:
		return uint64(uint32(key))
	case pb.KeyKindS32:
		return uint64(ebtree.FoldInt32(int32(key)))
	case pb.KeyKindU64:
		return uint64(key)
	case pb.KeyKindS64:
		return ebtree.FoldInt64(key)
	}
	return 0
}

func unfoldKey(kind pb.KeyKind, stored uint64) int64 {
	switch kind {
	case pb.KeyKindU32, pb.KeyKindU64:
		return int64(stored)
	case pb.KeyKindS32:
		return int64(ebtree.UnfoldInt32(uint32(stored)))
	case pb.KeyKindS64:
		return ebtree.UnfoldInt64(stored)
	}
	return 0
}

// Insert splices a payload into a named tree under key, returning
// false (and the existing payload) if the tree is unique-keyed and
// key is already present.
func (s *Store) Insert(name string, key int64, payload []byte) (inserted bool, existing []byte, err error) {
	e, err := s.get(name)
	if err != nil {
		return false, nil, err
	}
	native := foldKey(e.kind, key)
	if e.u32 != nil {
		ok, ex := e.u32.insert(uint32(native), payload)
		return ok, ex, nil
	}
	ok, ex := e.u64.insert(native, payload)
	return ok, ex, nil
}

// Lookup resolves a point query against a named tree.
func (s *Store) Lookup(name string, key int64, mode pb.LookupMode) (resultKey int64, payload []byte, found bool, err error) {
	e, err := s.get(name)
	if err != nil {
		return 0, nil, false, err
	}
	native := foldKey(e.kind, key)

	if e.u32 != nil {
		switch mode {
		case pb.LookupGE:
			k, p, ok := e.u32.lookupGE(uint32(native))
			return unfoldKey(e.kind, uint64(k)), p, ok, nil
		case pb.LookupLE:
			k, p, ok := e.u32.lookupLE(uint32(native))
			return unfoldKey(e.kind, uint64(k)), p, ok, nil
		default:
			p, ok := e.u32.lookup(uint32(native))
			return key, p, ok, nil
		}
	}

	switch mode {
	case pb.LookupGE:
		k, p, ok := e.u64.lookupGE(native)
		return unfoldKey(e.kind, k), p, ok, nil
	case pb.LookupLE:
		k, p, ok := e.u64.lookupLE(native)
		return unfoldKey(e.kind, k), p, ok, nil
	default:
		p, ok := e.u64.lookup(native)
		return key, p, ok, nil
	}
}

// Delete removes the oldest cell holding key in a named tree.
func (s *Store) Delete(name string, key int64) (bool, error) {
	e, err := s.get(name)
	if err != nil {
		return false, err
	}
	native := foldKey(e.kind, key)
	if e.u32 != nil {
		return e.u32.delete(uint32(native)), nil
	}
	return e.u64.delete(native), nil
}

// Count returns the number of cells in a named tree.
func (s *Store) Count(name string) (int, error) {
	e, err := s.get(name)
	if err != nil {
		return 0, err
	}
	if e.u32 != nil {
		return e.u32.count(), nil
	}
	return e.u64.count(), nil
}

// Kind and Unique report a named tree's fixed metadata.
func (s *Store) Kind(name string) (pb.KeyKind, bool, error) {
	e, err := s.get(name)
	if err != nil {
		return "", false, err
	}
	return e.kind, e.unique, nil
}

// Range walks a named tree in ascending key order, stopping early if
// fn returns false.
func (s *Store) Range(name string, fn func(key int64, payload []byte) bool) error {
	e, err := s.get(name)
	if err != nil {
		return err
	}
	if e.u32 != nil {
		e.u32.rangeAll(func(k uint32, p []byte) bool {
			return fn(unfoldKey(e.kind, uint64(k)), p)
		})
		return nil
	}
	e.u64.rangeAll(func(k uint64, p []byte) bool {
		return fn(unfoldKey(e.kind, k), p)
	})
	return nil
}

// TreeNames returns every registered tree name; order is unspecified.
func (s *Store) TreeNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.trees))
	for name := range s.trees {
		names = append(names, name)
	}
	return names
}
