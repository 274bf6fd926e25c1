// Package ebtree implements an elastic binary tree: an in-memory,
// pointer-tagged radix tree giving O(log N) search, insertion and
// deletion of keyed cells, with O(1) amortized ordered traversal.
//
// A Cell is intrusive: callers embed it in their own data and the tree
// never allocates. Every Cell plays two roles at once, a node-half
// (an internal branch point) and a leaf-half (a terminal key holder);
// which role is "active" at a given position in the tree depends on
// how the cell was spliced in, not on its static type.
//
// The package is not safe for concurrent use without external
// synchronization: callers that read and write the same Root from
// multiple goroutines must serialize access themselves.
package ebtree
