// Package builder provides canned ownership-tree shapes over core.Tree:
// chains, stars, and perfect k-ary trees. The constructors exist to keep
// tests, benchmarks, and demos free of hand-rolled setup loops.
//
// Shapes are built into a caller-supplied Tree, so several shapes can
// share one arena (each shape contributes one more root). Every
// constructor returns the root handle of the shape it built.
//
// Minimum sizes:
//
//	Path:  n ≥ MinPathNodes
//	Star:  leaves ≥ MinStarLeaves
//	KAry:  k ≥ MinKAryBranch, depth ≥ MinKAryDepth
//
// Violations return ErrTooFewNodes (check with errors.Is).
package builder

import (
	"fmt"

	"github.com/katalvlaran/arbor/core"
)

// Shape size floors. A path needs at least its root; a star with zero
// leaves is just a root, which Star permits; a k-ary tree needs at least
// one child per internal node and may be a bare root at depth zero.
const (
	MinPathNodes  = 1
	MinStarLeaves = 0
	MinKAryBranch = 1
	MinKAryDepth  = 0
)

// Path builds a chain of n nodes: root → n1 → n2 → ... → n(n-1).
// Returns the root handle.
//
// Returns ErrTreeNil for a nil tree and ErrTooFewNodes for n < MinPathNodes.
// Complexity: O(n).
func Path(t *core.Tree, n int) (core.NodeID, error) {
	if t == nil {
		return core.NoNode, ErrTreeNil
	}
	if n < MinPathNodes {
		return core.NoNode, fmt.Errorf("%w: Path needs n ≥ %d, got %d", ErrTooFewNodes, MinPathNodes, n)
	}

	root := t.NewNode()
	prev := root
	for i := 1; i < n; i++ {
		next := t.NewNode()
		// Append onto a fresh tail: cannot fail.
		_ = t.Append(prev, next)
		prev = next
	}

	return root, nil
}

// Star builds a root owning `leaves` direct children and nothing deeper.
// Returns the root handle.
//
// Returns ErrTreeNil for a nil tree and ErrTooFewNodes for negative leaves.
// Complexity: O(leaves).
func Star(t *core.Tree, leaves int) (core.NodeID, error) {
	if t == nil {
		return core.NoNode, ErrTreeNil
	}
	if leaves < MinStarLeaves {
		return core.NoNode, fmt.Errorf("%w: Star needs leaves ≥ %d, got %d", ErrTooFewNodes, MinStarLeaves, leaves)
	}

	root := t.NewNode()
	for i := 0; i < leaves; i++ {
		_ = t.Append(root, t.NewNode())
	}

	return root, nil
}

// KAry builds a perfect k-ary tree of the given depth: every node above
// the leaf level owns exactly k children, all leaves sit at `depth`.
// Returns the root handle.
//
// Returns ErrTreeNil for a nil tree and ErrTooFewNodes for k < MinKAryBranch
// or depth < MinKAryDepth.
// Complexity: O(k^depth) nodes.
func KAry(t *core.Tree, k, depth int) (core.NodeID, error) {
	if t == nil {
		return core.NoNode, ErrTreeNil
	}
	if k < MinKAryBranch {
		return core.NoNode, fmt.Errorf("%w: KAry needs k ≥ %d, got %d", ErrTooFewNodes, MinKAryBranch, k)
	}
	if depth < MinKAryDepth {
		return core.NoNode, fmt.Errorf("%w: KAry needs depth ≥ %d, got %d", ErrTooFewNodes, MinKAryDepth, depth)
	}

	root := t.NewNode()
	grow(t, root, k, depth)

	return root, nil
}

// grow attaches k fresh subtrees of the remaining depth under id.
func grow(t *core.Tree, id core.NodeID, k, remaining int) {
	if remaining == 0 {
		return
	}
	for i := 0; i < k; i++ {
		child := t.NewNode()
		_ = t.Append(id, child)
		grow(t, child, k, remaining-1)
	}
}
