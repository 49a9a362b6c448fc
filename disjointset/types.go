package disjointset

import "errors"

// ErrOutOfRange indicates that a handle passed to Core was never returned by MakeSet.
var ErrOutOfRange = errors.New("disjointset: handle out of range")

// ErrUnknownElement indicates that an element passed to Forest was not part of its construction set.
var ErrUnknownElement = errors.New("disjointset: unknown element")

// ErrDuplicateElement indicates that the element list given to NewForest contains a repeat.
var ErrDuplicateElement = errors.New("disjointset: duplicate element")

// noParent marks a root in the arena.
const noParent = -1

// node is one arena slot. size is only meaningful while the node is a root.
type node struct {
	parent int // index of the parent, or noParent for a root
	rank   int // upper bound on the height of the subtree rooted here
	size   int // number of elements in the set (roots only)
}
