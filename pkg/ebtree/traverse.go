package ebtree

// First returns the cell with the smallest key, or nil if the tree is
// empty.
func (r *Root[K]) First() *Cell[K] {
	if r.top.isNull() {
		return nil
	}
	return leftmostLink(r.top).owner
}

// Last returns the cell with the largest key, or nil if the tree is
// empty.
func (r *Root[K]) Last() *Cell[K] {
	if r.top.isNull() {
		return nil
	}
	return rightmostLink(r.top).owner
}

// Next returns c's successor in key order, or nil if c is last.
func (c *Cell[K]) Next() *Cell[K] {
	p := c.leaf.parent
	if p.node != nil && p.side == left {
		return leftmostLink(p.node.branch[right]).owner
	}
	cur := p.node
	for cur != nil {
		pp := cur.parent
		if pp.node == nil {
			return nil
		}
		if pp.side == left {
			return leftmostLink(pp.node.branch[right]).owner
		}
		cur = pp.node
	}
	return nil
}

// Prev returns c's predecessor in key order, or nil if c is first.
func (c *Cell[K]) Prev() *Cell[K] {
	p := c.leaf.parent
	if p.node != nil && p.side == right {
		return rightmostLink(p.node.branch[left]).owner
	}
	cur := p.node
	for cur != nil {
		pp := cur.parent
		if pp.node == nil {
			return nil
		}
		if pp.side == right {
			return rightmostLink(pp.node.branch[left]).owner
		}
		cur = pp.node
	}
	return nil
}

// NextUnique returns the first cell after c whose key differs from
// c's, skipping the rest of c's duplicate group.
func (c *Cell[K]) NextUnique() *Cell[K] {
	key := c.Key
	cur := c.Next()
	for cur != nil && cur.Key == key {
		cur = cur.Next()
	}
	return cur
}

// PrevUnique returns the last cell before c whose key differs from
// c's, skipping the rest of c's duplicate group.
func (c *Cell[K]) PrevUnique() *Cell[K] {
	key := c.Key
	cur := c.Prev()
	for cur != nil && cur.Key == key {
		cur = cur.Prev()
	}
	return cur
}

// NextDup returns the next cell sharing c's key, or nil if c is the
// last member of its duplicate group (or has no duplicates).
func (c *Cell[K]) NextDup() *Cell[K] {
	if cur := c.Next(); cur != nil && cur.Key == c.Key {
		return cur
	}
	return nil
}

// PrevDup returns the previous cell sharing c's key, or nil if c is
// the first member of its duplicate group (or has no duplicates).
func (c *Cell[K]) PrevDup() *Cell[K] {
	if cur := c.Prev(); cur != nil && cur.Key == c.Key {
		return cur
	}
	return nil
}
