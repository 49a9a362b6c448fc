// Package disjointset provides a union-find (disjoint-set forest) in two layers.
//
// What & Why
//
//   - Core keeps a dynamic partition of dense integer handles 0..n-1. All state lives
//     in one arena slice of {parent, rank, size} records; a handle is simply an index
//     into that slice, so there are no pointers between nodes and no cycles to manage.
//
//   - Forest[T] is a thin adapter that lets callers work with their own comparable
//     element type (vertex IDs, structs, ints ...) while delegating every set-theoretic
//     decision to Core. All hashing and equality of T stays in the adapter, which keeps
//     the hot path of Core free of generic dispatch.
//
// Algorithms
//
//   - FindSet: iterative, two-pass. Pass one walks parent pointers up to the root;
//     pass two rewrites every visited node to point straight at that root
//     (full path compression). No recursion, so long pre-compression chains
//     cannot exhaust the stack.
//
//   - Union: union by rank. The root with the lower rank is attached under the
//     root with the higher rank and its size folded in. On equal ranks the root
//     of y is attached under the root of x and x's rank grows by exactly one.
//
//   - Complexity: any mix of m FindSet/Union calls over n elements costs
//     O((n+m)·α(n)), α being the inverse Ackermann function.
//
// Invariants
//
//   - Following parent links from any handle terminates at a root (no cycles).
//   - Two handles are in the same set iff their walks end at the same root.
//   - A root's rank never decreases and grows by one only on an equal-rank union.
//   - Compression only ever repoints a node at its current root.
//
// Error Conditions
//
//   - ErrOutOfRange        : a handle passed to Core was never allocated by MakeSet.
//   - ErrUnknownElement    : an element passed to Forest was not in its construction set.
//   - ErrDuplicateElement  : NewForest received the same element more than once.
//
// Concurrency
//
//	Neither Core nor Forest is safe for concurrent use: even FindSet mutates the
//	arena through path compression. Give every goroutine its own instance.
//
// For examples of usage, see example_test.go in this package.
package disjointset
