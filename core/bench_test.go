package core_test

import (
	"testing"

	"github.com/katalvlaran/arbor/core"
)

// BenchmarkAppend_Flat measures attaching N children under a single root.
// Each Append on a fresh root is O(1): no prior parent to detach from and
// an empty ancestor chain above the root.
func BenchmarkAppend_Flat(b *testing.B) {
	t := core.NewTree()
	root := t.NewNode()

	ids := make([]core.NodeID, b.N)
	for i := range ids {
		ids[i] = t.NewNode()
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = t.Append(root, ids[i])
	}
}

// BenchmarkReparent_Pair measures moving one node back and forth between
// two parents, the hot path of scene-graph style workloads.
func BenchmarkReparent_Pair(b *testing.B) {
	t := core.NewTree()
	left := t.NewNode()
	right := t.NewNode()
	n := t.NewNode()
	_ = t.Append(left, n)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			_ = t.Append(right, n)
		} else {
			_ = t.Append(left, n)
		}
	}
}

// BenchmarkDestroy_Chain1000 measures tearing down a 1000-node chain.
// Construction is excluded; each iteration rebuilds then destroys with the
// timer running only for Destroy.
func BenchmarkDestroy_Chain1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := core.NewTree()
		root := t.NewNode()
		prev := root
		for j := 0; j < 999; j++ {
			n := t.NewNode()
			_ = t.Append(prev, n)
			prev = n
		}
		b.StartTimer()

		_ = t.Destroy(root)
	}
}
