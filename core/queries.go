// Package core: read-only queries over the Tree arena.
//
// Determinism:
//   - Nodes() and Roots() return handles sorted ascending (creation order,
//     since NodeIDs are monotonic). Rely on them for reproducible outputs.
//   - Children() preserves insertion order among siblings.

package core

import "sort"

// Parent returns the handle of id's parent and true, or (NoNode, false)
// when the back-reference is absent — because id is a root, or because id
// itself no longer resolves. A destroyed parent is indistinguishable from
// never having had one; that decay is the point.
// Complexity: O(1).
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	n, ok := t.nodes[id]
	if !ok || n.parent == NoNode {
		return NoNode, false
	}

	return n.parent, true
}

// Children returns a copy of id's owned children in insertion order.
// Returns nil when id does not resolve or has no children. Callers may
// retain and mutate the returned slice freely.
// Complexity: O(k).
func (t *Tree) Children(id NodeID) []NodeID {
	n, ok := t.nodes[id]
	if !ok || len(n.children) == 0 {
		return nil
	}

	out := make([]NodeID, len(n.children))
	copy(out, n.children)

	return out
}

// Contains reports whether id resolves to a live node.
// Complexity: O(1).
func (t *Tree) Contains(id NodeID) bool {
	_, ok := t.nodes[id]

	return ok
}

// IsRoot reports whether id resolves to a live node with no parent.
// A destroyed or unknown handle is not a root — it is nothing.
// Complexity: O(1).
func (t *Tree) IsRoot(id NodeID) bool {
	n, ok := t.nodes[id]

	return ok && n.parent == NoNode
}

// Len returns the number of live nodes in the arena.
// Complexity: O(1).
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Nodes returns the handles of all live nodes in ascending order.
// Complexity: O(n log n).
func (t *Tree) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Roots returns the handles of all live parentless nodes in ascending order.
// Complexity: O(n log n).
func (t *Tree) Roots() []NodeID {
	var ids []NodeID
	for id, n := range t.nodes {
		if n.parent == NoNode {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
