package ebtree

// Lookup returns the cell holding key, or nil if no such key exists.
// When duplicates exist, it returns the first (oldest) one inserted.
func (r *Root[K]) Lookup(key K) *Cell[K] {
	d := descend(r, key)
	switch d.kind {
	case stopMatch:
		if d.leaf != nil {
			return d.leaf.owner
		}
		return d.node.owner
	case stopDupRoot:
		if d.node.owner.Key != key {
			return nil
		}
		return leftmost(d.node).owner
	default:
		return nil
	}
}

// LookupGE returns the cell with the smallest key >= key, or nil if
// none exists. Ties against an existing duplicate group resolve to
// the first (oldest) duplicate.
func (r *Root[K]) LookupGE(key K) *Cell[K] {
	cur := r.top
	if cur.isNull() {
		return nil
	}
	var candidate link[K]
	for {
		switch cur.tag {
		case tagLeaf:
			if cur.leaf.owner.Key >= key {
				return cur.leaf.owner
			}
			return successor(candidate)

		default:
			n := cur.node
			if n.isDupRoot() {
				if n.owner.Key >= key {
					return leftmost(n).owner
				}
				return successor(candidate)
			}
			diff := n.owner.Key ^ key
			if diff == 0 {
				return n.owner
			}
			if (diff >> uint(n.bit)) >= 2 {
				if n.owner.Key > key {
					return leftmostLink(cur).owner
				}
				return successor(candidate)
			}
			b := bitAt(key, n.bit)
			if b == left {
				candidate = n.branch[right]
			}
			cur = n.branch[b]
		}
	}
}

// LookupLE returns the cell with the largest key <= key, or nil if
// none exists. Ties against an existing duplicate group resolve to
// the last (newest) duplicate.
func (r *Root[K]) LookupLE(key K) *Cell[K] {
	cur := r.top
	if cur.isNull() {
		return nil
	}
	var candidate link[K]
	for {
		switch cur.tag {
		case tagLeaf:
			if cur.leaf.owner.Key <= key {
				return cur.leaf.owner
			}
			return predecessor(candidate)

		default:
			n := cur.node
			if n.isDupRoot() {
				if n.owner.Key <= key {
					return rightmost(n).owner
				}
				return predecessor(candidate)
			}
			diff := n.owner.Key ^ key
			if (diff >> uint(n.bit)) >= 2 {
				if n.owner.Key < key {
					return rightmostLink(cur).owner
				}
				return predecessor(candidate)
			}
			b := bitAt(key, n.bit)
			if b == right {
				candidate = n.branch[left]
			}
			cur = n.branch[b]
		}
	}
}

func successor[K Unsigned](candidate link[K]) *Cell[K] {
	if candidate.isNull() {
		return nil
	}
	return leftmostLink(candidate).owner
}

func predecessor[K Unsigned](candidate link[K]) *Cell[K] {
	if candidate.isNull() {
		return nil
	}
	return rightmostLink(candidate).owner
}

// Count walks the tree and returns the number of cells in it. It is
// O(N); the core tree keeps no running counter, so callers that need
// frequent counts should keep their own.
func (r *Root[K]) Count() int {
	n := 0
	for c := r.First(); c != nil; c = c.Next() {
		n++
	}
	return n
}

// Range calls fn for every cell in key order, stopping early if fn
// returns false.
func (r *Root[K]) Range(fn func(*Cell[K]) bool) {
	for c := r.First(); c != nil; c = c.Next() {
		if !fn(c) {
			return
		}
	}
}

// NewFromSlice builds a populated root by inserting cells[i] under
// keys[i] for every index, in slice order, into a fresh root. unique
// selects NewRoot vs. NewUniqueRoot for the returned root. It panics
// if len(keys) != len(cells): both slices describing the same bulk
// load at different lengths is a caller error, not a value this
// package can recover from (spec.md §7 keeps the hot paths
// branch-light and leaves misuse unchecked; this constructor runs
// once at load time, so the one cheap length check is worth it).
func NewFromSlice[K Unsigned](unique bool, keys []K, cells []Cell[K]) *Root[K] {
	if len(keys) != len(cells) {
		panic("ebtree: NewFromSlice: keys and cells must be the same length")
	}
	var r *Root[K]
	if unique {
		r = NewUniqueRoot[K]()
	} else {
		r = NewRoot[K]()
	}
	for i := range cells {
		r.Insert(&cells[i], keys[i])
	}
	return r
}
