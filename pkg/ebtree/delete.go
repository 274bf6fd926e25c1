package ebtree

// setParent rewrites whichever half l points at so its own parent
// backref reads b. Used after a splice moves l into a new slot.
func setParent[K Unsigned](l link[K], b backref[K]) {
	switch l.tag {
	case tagNode:
		l.node.parent = b
	case tagLeaf:
		l.leaf.parent = b
	}
}

// clearNode wipes n's bookkeeping once it has been fully unwired from
// the tree, so a stale bit/branch pair can't be mistaken for a live
// node later.
func clearNode[K Unsigned](n *nodeHalf[K]) {
	n.parent = clearedBackref[K]()
	n.bit = 0
	n.branch[left] = link[K]{}
	n.branch[right] = link[K]{}
}

// Delete removes c from whatever tree holds it. It is a no-op if c is
// not currently in a tree.
//
// Removing c's leaf always promotes its sibling into the slot held by
// c.leaf's immediate parent node, call it P, bypassing P entirely. If
// P is hosted by c's own node-half (the cell is simultaneously acting
// as both a node and a leaf of that same node), that single splice
// already finishes the job: P never existed anywhere else in the
// tree. Otherwise P belongs to some other cell y, whose node-half is
// now unused; if c's own node-half is still active somewhere else in
// the tree, y's freed node-half is reused to take over that role in
// place, so no other cell's bookkeeping has to move.
func (c *Cell[K]) Delete() {
	if !c.InTree() {
		return
	}

	p := c.leaf.parent
	parentNode := p.node
	if parentNode == nil {
		*p.slot() = link[K]{}
		c.detach()
		return
	}

	sibling := parentNode.branch[p.side.other()]
	gp := parentNode.parent
	*gp.slot() = sibling
	setParent(sibling, gp)

	y := parentNode.owner
	if parentNode != &c.node && c.nodeInUse() {
		cn := &c.node
		cnParent := cn.parent

		y.node.bit = cn.bit
		y.node.branch = cn.branch
		y.node.parent = cnParent
		*cnParent.slot() = nodeLink(&y.node)
		setParent(y.node.branch[left], backref[K]{node: &y.node, side: left})
		setParent(y.node.branch[right], backref[K]{node: &y.node, side: right})
	} else if parentNode != &c.node {
		clearNode(&y.node)
	}

	c.detach()
}
