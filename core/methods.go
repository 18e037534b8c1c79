// Package core: Tree mutator implementations.
//
// This file provides the node lifecycle operations on the Tree type
// defined in types.go: NewNode, Append, Remove, Destroy. Every mutator
// leaves the arena with bidirectional consistency intact — a child is in
// its parent's children slice exactly when its back-reference names that
// parent — and never lets a node acquire a second parent, even transiently
// from the caller's point of view.

package core

// NewNode allocates a fresh node in the arena and returns its handle.
// The new node is a root: no parent, no children.
// Complexity: O(1) amortized.
func (t *Tree) NewNode() NodeID {
	t.nextID++
	id := NodeID(t.nextID)
	t.nodes[id] = &node{parent: NoNode}

	return id
}

// Append transfers ownership of child into parent's children and points
// child's back-reference at parent.
//
// If child already has a parent — any parent, including parent itself —
// it is detached from that parent first, so a node is never owned by two
// parents at once. Re-appending to the current parent therefore moves the
// child to the end of its siblings; this detach-then-attach reading of
// reparenting is deliberate and documented here rather than special-cased
// as a no-op.
//
// Returns ErrNodeNotFound if either handle does not resolve, and ErrCycle
// if child is parent itself or an ancestor of parent (the owning edges
// must stay acyclic).
// Complexity: O(h + k), h = ancestor chain above parent, k = old sibling count.
func (t *Tree) Append(parent, child NodeID) error {
	p, ok := t.nodes[parent]
	if !ok {
		return ErrNodeNotFound
	}
	c, ok := t.nodes[child]
	if !ok {
		return ErrNodeNotFound
	}

	// Reject self-append and any append that would close an ownership
	// cycle: child must not already be an ancestor of parent.
	if child == parent || t.isAncestor(child, parent) {
		return ErrCycle
	}

	// Detach from the previous parent, if any. For the same-parent case
	// this is what produces the move-to-end reordering.
	t.detach(child, c)

	// Establish the new edge on both sides.
	c.parent = parent
	p.children = append(p.children, child)

	return nil
}

// Remove detaches child from parent, clearing the back-reference and
// deleting the matching entry from parent's children. The match is by
// handle identity, never by structural comparison.
//
// Remove is a total function: if either handle does not resolve, or
// child's recorded parent is not parent (absent, or another node), the
// call is a silent no-op — that situation is legal, not an error.
// The child is detached only, becoming a root; it is not destroyed.
// Complexity: O(k), k = sibling count.
func (t *Tree) Remove(parent, child NodeID) {
	c, ok := t.nodes[child]
	if !ok {
		return
	}
	if c.parent != parent {
		return
	}
	if _, ok = t.nodes[parent]; !ok {
		return
	}

	t.detach(child, c)
}

// Destroy ends the life of the node and of every node it transitively
// owns. The node is detached from its parent first, then the subtree is
// deleted from the arena bottom-up, firing the destroy hook once per node,
// children before parents. Handles into the destroyed subtree stop
// resolving immediately; there is no way to observe a destroyed node.
//
// Returns ErrNodeNotFound if id does not resolve.
// Complexity: O(size of the subtree).
func (t *Tree) Destroy(id NodeID) error {
	n, ok := t.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}

	// Sever the incoming owning edge so the parent never holds a handle
	// to freed storage.
	t.detach(id, n)
	t.destroySubtree(id, n)

	return nil
}

// Internal helper methods:
////////////////////

// detach removes the child→parent edge on both sides: clears c.parent and
// deletes id from the old parent's children slice by identity, preserving
// the order of the remaining siblings. No-op for roots.
func (t *Tree) detach(id NodeID, c *node) {
	if c.parent == NoNode {
		return
	}
	if p, ok := t.nodes[c.parent]; ok {
		for i, cid := range p.children {
			if cid == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	c.parent = NoNode
}

// isAncestor reports whether a is an ancestor of b through owning edges.
// Walks the parent chain upward from b; the chain is acyclic by the very
// invariant this check protects, so the walk terminates.
func (t *Tree) isAncestor(a, b NodeID) bool {
	cur := t.nodes[b].parent
	for cur != NoNode {
		if cur == a {
			return true
		}
		cur = t.nodes[cur].parent
	}

	return false
}

// destroySubtree deletes n and all its descendants from the arena,
// post-order, firing the destroy hook per node.
func (t *Tree) destroySubtree(id NodeID, n *node) {
	for _, cid := range n.children {
		t.destroySubtree(cid, t.nodes[cid])
	}
	delete(t.nodes, id)
	t.onDestroy(id)
}
