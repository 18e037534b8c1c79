// Package core_test contains shared fixtures for arbor/core tests.
//
// Purpose:
//   - Provide small, deterministic tree fixtures used across test files.
//   - Keep per-test bodies focused on the property under test.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbor/core"
)

// destroyCounter is a destroy hook that counts teardown events and records
// their order. Used to assert the destruction cascade.
type destroyCounter struct {
	count int
	order []core.NodeID
}

func (d *destroyCounter) hook(id core.NodeID) {
	d.count++
	d.order = append(d.order, id)
}

// scene is the canonical three-node fixture: root owning a, a owning b
// (b was first appended to root, then reparented under a).
type scene struct {
	tree       *core.Tree
	root, a, b core.NodeID
}

// buildScene constructs the fixture and asserts the intermediate steps, so
// a broken Append fails here with a precise message instead of deep inside
// a property test.
func buildScene(t *testing.T, opts ...core.TreeOption) scene {
	t.Helper()

	tr := core.NewTree(opts...)
	root := tr.NewNode()
	a := tr.NewNode()
	b := tr.NewNode()

	require.NoError(t, tr.Append(root, a), "Append(root, a)")
	require.NoError(t, tr.Append(root, b), "Append(root, b)")
	require.NoError(t, tr.Append(a, b), "Append(a, b) reparent")

	return scene{tree: tr, root: root, a: a, b: b}
}
