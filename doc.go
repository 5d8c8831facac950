// Package netpath is a weighted network engine for capture-the-flag maps:
// a dense, growable adjacency matrix with labelled vertices, lazy
// traversals, three best-first path searches and a random map generator.
//
// What is inside?
//
//	heap/      : min/max priority heap of (vertex, weight) records
//	network/   : Network[T]: labelled vertices, directed weighted edges,
//	             stable handles, immutable Matrix snapshots
//	traverse/  : lazy BFS/DFS sequences, reachability, strong connectivity
//	pathsearch/: least-cost, greedy-longest and randomized searches,
//	             concurrent sampling
//	snapshot/  : JSON save/restore, schema-checked
//	mapgen/    : connected random maps of Locations with 1–15 km edges
//	cmd/netpath: CLI: generate, inspect, path, sample
//
// Quick ASCII example:
//
//	0 ──2──▶ 1 ──2──▶ 2 ──1──▶ 3 ──1──▶ 4
//	└────────10───────┘
//
// LeastCost(0, 4) walks 0→1→2→3→4 with weight 6. GreedyLongest prefers the
// heavy 0→2 hop and returns 0→2→3→4 with weight 12.
//
// All searches share one skeleton and one Result type; the network never
// logs and never panics on bad input. Invalid indices make mutations no-ops
// that report network.ErrInvalidIndex, and make searches return an empty
// Result.
//
//	go get github.com/katalvlaran/netpath
package netpath
