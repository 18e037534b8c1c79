// Package core declares the Tree arena, NodeID handles, TreeOption,
// sentinel errors, and the NewTree constructor.
//
// Storage layout: Tree.nodes maps NodeID → *node, where each node record
// carries its parent handle (NoNode when the node is a root) and an ordered
// slice of owned child handles. The map is the arena; membership in the map
// is what "alive" means.
package core

import "errors"

// Sentinel errors for core tree operations.
var (
	// ErrNodeNotFound indicates an operation referenced a handle that does
	// not resolve to a live node (never created, or already destroyed).
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrCycle indicates an Append that would make a node its own
	// descendant through the owning edges.
	ErrCycle = errors.New("core: append would create ownership cycle")
)

// NodeID is an opaque, stable handle to a node in a Tree's arena.
//
// Handles are never reused within a Tree. Holding a NodeID does not keep
// the node alive: once the node is destroyed, the handle stops resolving
// and every query reports absence. This is the weak-reference mechanism —
// an arena lookup naturally degrades to "not found" instead of dangling.
type NodeID uint64

// NoNode is the zero NodeID. It never names a live node and is used
// internally as the "no parent" marker.
const NoNode NodeID = 0

// node is the arena record behind a NodeID.
//
// parent is a non-owning back-reference (NoNode for roots).
// children are owning references, kept in insertion order.
type node struct {
	parent   NodeID
	children []NodeID
}

// TreeOption configures behavior of a Tree before creation.
type TreeOption func(t *Tree)

// WithDestroyHook registers fn to be called once per node as Destroy tears
// a subtree down, children before parents. Useful for resource cleanup and
// for asserting the destruction cascade in tests.
func WithDestroyHook(fn func(id NodeID)) TreeOption {
	return func(t *Tree) {
		if fn != nil {
			t.onDestroy = fn
		}
	}
}

// Tree is the arena owning every node of one ownership hierarchy.
//
// A Tree may hold several independent roots at once; "tree" refers to the
// shape of the ownership edges, not to a single-root restriction.
// The zero value is not usable; construct with NewTree.
type Tree struct {
	nextID    uint64           // monotonic NodeID generator, never reused
	nodes     map[NodeID]*node // the arena: NodeID → live record
	onDestroy func(id NodeID)  // fired per node during Destroy cascades
}

// NewTree creates an empty Tree with the given options.
// Complexity: O(1)
func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{
		nodes:     make(map[NodeID]*node),
		onDestroy: func(NodeID) {},
	}
	// Apply options
	for _, opt := range opts {
		opt(t)
	}

	return t
}
