// Package walk provides depth-first and breadth-first traversal over the
// owning edges of a core.Tree, with optional hooks, depth limiting, and
// context cancellation.
//
// Both traversals follow ownership downward only: children in stored
// sibling order, never the weak parent back-references. Because owning
// edges are acyclic by the core invariants, no visited-set is needed and
// every node of the subtree is visited exactly once.
//
// Complexity:
//
//   - Time:   O(n)  (n = nodes in the traversed subtree)
//   - Memory: O(n)  (result storage + stack/queue)
package walk

import (
	"github.com/katalvlaran/arbor/core"
)

// DFS walks the subtree under root in pre-order: each node before its
// children, children in stored order.
//
// Returns ErrTreeNil or ErrRootNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func DFS(t *core.Tree, root core.NodeID, opts ...Option) (*Result, error) {
	w, err := prepare(t, root, opts)
	if err != nil {
		return nil, err
	}

	if err = w.dfs(root, 0); err != nil {
		return nil, err
	}

	return w.res, nil
}

// BFS walks the subtree under root in level order: the root, then all
// its children, then all grandchildren, siblings in stored order.
//
// Returns ErrTreeNil or ErrRootNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(t *core.Tree, root core.NodeID, opts ...Option) (*Result, error) {
	w, err := prepare(t, root, opts)
	if err != nil {
		return nil, err
	}

	type item struct {
		id    core.NodeID
		depth int
	}
	queue := []item{{root, 0}}

	var cur item
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]

		if err = w.visit(cur.id, cur.depth); err != nil {
			return nil, err
		}
		if w.opts.MaxDepth > 0 && cur.depth >= w.opts.MaxDepth {
			continue
		}
		for _, cid := range w.tree.Children(cur.id) {
			queue = append(queue, item{cid, cur.depth + 1})
		}
	}

	return w.res, nil
}

// walker encapsulates shared traversal state.
type walker struct {
	tree *core.Tree
	opts Options
	res  *Result
}

// prepare validates inputs, folds options, and builds the walker.
func prepare(t *core.Tree, root core.NodeID, opts []Option) (*walker, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !t.Contains(root) {
		return nil, ErrRootNotFound
	}

	return &walker{
		tree: t,
		opts: o,
		res: &Result{
			Order: make([]core.NodeID, 0),
			Depth: make(map[core.NodeID]int),
		},
	}, nil
}

// visit checks cancellation, records id at depth d, and fires OnVisit.
func (w *walker) visit(id core.NodeID, d int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = d

	return w.opts.OnVisit(id, d)
}

// dfs recursively visits id and its subtree pre-order.
func (w *walker) dfs(id core.NodeID, d int) error {
	if err := w.visit(id, d); err != nil {
		return err
	}
	if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
		return nil
	}

	for _, cid := range w.tree.Children(id) {
		if err := w.dfs(cid, d+1); err != nil {
			return err
		}
	}

	return nil
}
