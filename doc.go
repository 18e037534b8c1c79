// Package arbor is a small in-memory library for ownership trees —
// hierarchies in which every node is exclusively owned by at most one
// parent, while the parent back-reference never extends a lifetime.
//
// 🌳 What is arbor?
//
//	A compact, pure-Go library built around a single idea:
//		• Owning edges — a parent holds its children; destroying the parent
//		  destroys every child that was not moved elsewhere first
//		• Weak back-references — a child points at its parent without keeping
//		  it alive; once the parent is gone, the reference reads as absent
//		• Stable handles — nodes live in an arena and are addressed by opaque
//		  NodeID values, so a stale handle resolves to "not found" instead of
//		  dangling
//
// ✨ Why choose arbor?
//
//   - Minimal API — two mutators (Append, Remove) carry the whole contract
//   - Deterministic queries — Nodes(), Roots(), Children() return stable order
//   - Pure Go — no cgo, no runtime dependencies
//   - Extensible — destroy hooks observe the teardown cascade
//
// Everything is organized under three subpackages:
//
//	builder/ — canned tree shapes (Path, Star, KAry) for tests and demos
//	core/    — fundamental Tree and NodeID types, Append/Remove/Destroy
//	walk/    — traversals (DFS, BFS) over the owning edges
//
// Quick ASCII example:
//
//	    root
//	    ├── a
//	    │   └── b   (b was reparented from root to a)
//	    └── c
//
// Dive into the package docs of core/, walk/ and builder/, and the runnable
// demos under examples/.
//
//	go get github.com/katalvlaran/arbor
package arbor
