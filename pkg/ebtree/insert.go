package ebtree

// Insert splices c into the tree under key. c must not already be in
// a tree. If the root is UNIQUE and key already exists, Insert leaves
// the tree untouched and returns the cell already holding that key;
// callers distinguish this case by comparing the returned pointer
// against c. Otherwise Insert returns c.
func (r *Root[K]) Insert(c *Cell[K], key K) *Cell[K] {
	c.Key = key
	c.bindOwner()

	if r.top.isNull() {
		c.leaf.parent = backref[K]{root: r}
		r.top = leafLink(&c.leaf)
		return c
	}

	d := descend(r, key)
	switch d.kind {
	case stopMatch:
		var old *Cell[K]
		if d.leaf != nil {
			old = d.leaf.owner
		} else {
			old = d.node.owner
		}
		if r.unique {
			return old
		}
		if p := old.leaf.parent.node; p != nil && p.isDupRoot() {
			return dupAppend(p, c)
		}
		return makeDupGroup(&old.leaf, c)

	case stopDupRoot:
		if d.node.owner.Key != key {
			return splitAtNode(d.node, c)
		}
		return dupAppend(d.node, c)

	case stopLeaf:
		return splitAtLeaf(d.leaf, c)

	default: // stopDiverge
		return splitAtNode(d.node, c)
	}
}

// splitAtLeaf handles an insert that lands on a leaf with a different
// key: a new internal node (hosted in c's own node-half) replaces the
// leaf's former position, with the old leaf and c's own leaf as its
// two children.
func splitAtLeaf[K Unsigned](old *leafHalf[K], c *Cell[K]) *Cell[K] {
	oldOwner := old.owner
	bit := int32(fls(c.Key ^ oldOwner.Key))
	oldSide := bitAt(oldOwner.Key, bit)
	newSide := oldSide.other()
	parent := old.parent

	c.node.bit = bit
	c.node.branch[oldSide] = leafLink(old)
	c.node.branch[newSide] = leafLink(&c.leaf)
	old.parent = backref[K]{node: &c.node, side: oldSide}
	c.leaf.parent = backref[K]{node: &c.node, side: newSide}
	c.node.parent = parent
	*parent.slot() = nodeLink(&c.node)
	return c
}

// splitAtNode handles an insert that diverges above a regular node:
// c's node-half is spliced between that node and its former parent,
// with the whole diverged sub-tree as one child and c's own leaf as
// the other.
func splitAtNode[K Unsigned](old *nodeHalf[K], c *Cell[K]) *Cell[K] {
	bit := int32(fls(c.Key ^ old.owner.Key))
	oldSide := bitAt(old.owner.Key, bit)
	newSide := oldSide.other()
	parent := old.parent

	c.node.bit = bit
	c.node.branch[oldSide] = nodeLink(old)
	c.node.branch[newSide] = leafLink(&c.leaf)
	old.parent = backref[K]{node: &c.node, side: oldSide}
	c.leaf.parent = backref[K]{node: &c.node, side: newSide}
	c.node.parent = parent
	*parent.slot() = nodeLink(&c.node)
	return c
}

// makeDupGroup turns a plain leaf into the root of a two-element
// duplicate sub-tree: the pre-existing cell keeps the left (older)
// side, c takes the right (newer) side and hosts the dup root's
// node-half.
func makeDupGroup[K Unsigned](old *leafHalf[K], c *Cell[K]) *Cell[K] {
	parent := old.parent

	c.node.bit = dupRoot
	c.node.branch[left] = leafLink(old)
	c.node.branch[right] = leafLink(&c.leaf)
	old.parent = backref[K]{node: &c.node, side: left}
	c.leaf.parent = backref[K]{node: &c.node, side: right}
	c.node.parent = parent
	*parent.slot() = nodeLink(&c.node)
	return c
}

// dupAppend threads c into an existing duplicate sub-tree. It walks
// strictly down the right spine to the most recently appended leaf
// and splices a fresh two-element dup node there, the same shape
// makeDupGroup builds for the first duplicate: the previous tail
// becomes the left (older) child, c becomes the new right (newest)
// child. The sub-tree's left spine is never touched by an append, so
// the very first insertion stays reachable by walking left to the
// first leaf, while the right spine grows one level per duplicate and
// always ends at the most recently inserted cell. This keeps the
// whole group's in-order traversal equal to insertion order for any
// number of duplicates.
func dupAppend[K Unsigned](root *nodeHalf[K], c *Cell[K]) *Cell[K] {
	n := root
	for n.branch[right].tag == tagNode {
		n = n.branch[right].node
	}
	old := n.branch[right].leaf

	c.node.bit = dupRoot
	c.node.branch[left] = leafLink(old)
	c.node.branch[right] = leafLink(&c.leaf)
	old.parent = backref[K]{node: &c.node, side: left}
	c.leaf.parent = backref[K]{node: &c.node, side: right}
	c.node.parent = backref[K]{node: n, side: right}
	n.branch[right] = nodeLink(&c.node)
	return c
}
