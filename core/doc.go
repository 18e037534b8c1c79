// Package core provides the fundamental Tree and NodeID types of arbor:
// an arena of nodes connected by owning parent→child edges, with weak
// (non-owning) child→parent back-references.
//
// The ownership model mirrors the classic shared/weak pointer split:
//
//   - A parent owns its children. Destroying a node destroys its whole
//     subtree, children before parents, unless a child was moved to another
//     parent first.
//   - A child's parent link never keeps the parent alive. Once the parent
//     is destroyed, the back-reference reads as absent — never as a
//     reference to freed storage.
//
// Instead of raw pointers, nodes are addressed by opaque NodeID handles
// into the Tree's arena. A handle whose node has been destroyed simply
// stops resolving, which is what makes the back-reference decay safe:
// absence falls out of the arena lookup, with no finalizer tricks.
//
// Core Methods:
//
//	// Node lifecycle
//	NewNode() NodeID                     // O(1): fresh, parentless, childless root
//	Append(parent, child NodeID) error   // O(h+k): reparent child under parent
//	Remove(parent, child NodeID)         // O(k): detach child; silent no-op otherwise
//	Destroy(id NodeID) error             // O(subtree): teardown cascade
//
//	// Query
//	Parent(id NodeID) (NodeID, bool)     // O(1), false when absent
//	Children(id NodeID) []NodeID         // O(k): ordered copy
//	Contains(id NodeID) bool             // O(1)
//	IsRoot(id NodeID) bool               // O(1)
//	Len() int                            // O(1)
//	Nodes() []NodeID                     // O(n log n): ascending
//	Roots() []NodeID                     // O(n log n): ascending
//
// (h = height above parent, k = sibling count, n = arena size.)
//
// Invariants maintained by every mutator:
//
//   - At most one parent per node.
//   - Bidirectional consistency: child ∈ parent.children ⇔ child.parent == parent.
//   - Ownership edges are acyclic: a node is never its own descendant.
//
// Concurrency: a Tree is not safe for concurrent use. The two mutators are
// single logical steps from the caller's point of view, but callers who
// share a Tree across goroutines must provide their own synchronization.
//
// Errors:
//
//	ErrNodeNotFound - a handle does not resolve to a live node.
//	ErrCycle        - append would make a node its own descendant.
package core
