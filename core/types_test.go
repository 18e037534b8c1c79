// Package core_test verifies Tree construction, handle identity, and the
// deterministic query surface.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbor/core"
)

// TestNewTree_Empty asserts the freshly constructed arena is empty and
// every query is safe on it.
func TestNewTree_Empty(t *testing.T) {
	tr := core.NewTree()

	require.Equal(t, 0, tr.Len())
	require.Empty(t, tr.Nodes())
	require.Empty(t, tr.Roots())
	require.False(t, tr.Contains(core.NoNode))
	require.False(t, tr.IsRoot(core.NodeID(1)))

	_, ok := tr.Parent(core.NodeID(1))
	require.False(t, ok)
	require.Nil(t, tr.Children(core.NodeID(1)))
}

// TestNewNode_FreshRoots asserts the factory contract: every NewNode is a
// live, parentless, childless node with a distinct handle, never NoNode.
func TestNewNode_FreshRoots(t *testing.T) {
	tr := core.NewTree()

	seen := make(map[core.NodeID]struct{})
	for i := 0; i < 100; i++ {
		id := tr.NewNode()
		require.NotEqual(t, core.NoNode, id, "NewNode must never return NoNode")
		require.True(t, tr.Contains(id))
		require.True(t, tr.IsRoot(id))
		require.Nil(t, tr.Children(id))

		_, dup := seen[id]
		require.False(t, dup, "handles must be distinct")
		seen[id] = struct{}{}
	}
	require.Equal(t, 100, tr.Len())
}

// TestHandlesNotReused asserts that destroying a node does not recycle its
// handle for later allocations; a stale handle stays stale forever.
func TestHandlesNotReused(t *testing.T) {
	tr := core.NewTree()

	old := tr.NewNode()
	require.NoError(t, tr.Destroy(old))

	for i := 0; i < 50; i++ {
		require.NotEqual(t, old, tr.NewNode(), "destroyed handle must not come back to life")
	}
	require.False(t, tr.Contains(old))
}

// TestNodesAndRoots_Deterministic asserts ascending enumeration order and
// the root/attached split.
func TestNodesAndRoots_Deterministic(t *testing.T) {
	tr := core.NewTree()
	a := tr.NewNode()
	b := tr.NewNode()
	c := tr.NewNode()
	require.NoError(t, tr.Append(a, b))

	require.Equal(t, []core.NodeID{a, b, c}, tr.Nodes(), "Nodes() ascending by handle")
	require.Equal(t, []core.NodeID{a, c}, tr.Roots(), "only parentless nodes are roots")
}

// TestChildren_ReturnsCopy asserts the returned slice is a snapshot:
// mutating it must not reach into the arena.
func TestChildren_ReturnsCopy(t *testing.T) {
	tr := core.NewTree()
	p := tr.NewNode()
	x := tr.NewNode()
	y := tr.NewNode()
	require.NoError(t, tr.Append(p, x))
	require.NoError(t, tr.Append(p, y))

	kids := tr.Children(p)
	kids[0] = core.NodeID(999)

	require.Equal(t, []core.NodeID{x, y}, tr.Children(p), "Children must be a defensive copy")
}

// TestParent_RootReportsAbsent asserts a live root's back-reference reads
// as absent, same shape as a stale handle's.
func TestParent_RootReportsAbsent(t *testing.T) {
	tr := core.NewTree()
	r := tr.NewNode()

	p, ok := tr.Parent(r)
	require.False(t, ok)
	require.Equal(t, core.NoNode, p)
}
