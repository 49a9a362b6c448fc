package disjointset

import "fmt"

// Core is a union-find over dense integer handles.
//
// Handles are allocated by MakeSet in order 0, 1, 2, ... and stay valid for the
// lifetime of the Core. The zero value is an empty, ready-to-use Core.
type Core struct {
	nodes []node // arena indexed by handle
	count int    // number of disjoint sets currently alive
}

// NewCore returns an empty Core with room for capacity handles before the arena grows.
// A negative capacity is treated as zero.
// Complexity: O(capacity) for the allocation.
func NewCore(capacity int) *Core {
	if capacity < 0 {
		capacity = 0
	}

	return &Core{nodes: make([]node, 0, capacity)}
}

// MakeSet allocates the next unused handle as a singleton set and returns it.
// The new set has rank 0 and size 1.
// Complexity: O(1) amortized.
func (c *Core) MakeSet() int {
	x := len(c.nodes)
	c.nodes = append(c.nodes, node{parent: noParent, rank: 0, size: 1})
	c.count++

	return x
}

// Len returns the number of handles allocated so far.
func (c *Core) Len() int { return len(c.nodes) }

// Count returns the number of disjoint sets currently alive.
func (c *Core) Count() int { return c.count }

// FindSet returns the root handle of the set containing x.
//
// Steps:
//  1. Validate x against the arena bounds (ErrOutOfRange otherwise).
//  2. Walk parent links from x until a root is reached.
//  3. Walk the same path again, repointing every visited node at the root.
//
// The second pass runs on every call; on an already-flat path it rewrites each
// node to the root it already points at, so repeated queries are idempotent.
//
// Complexity: O(α(n)) amortized.
func (c *Core) FindSet(x int) (int, error) {
	if err := c.check(x); err != nil {
		return noParent, err
	}

	return c.find(x), nil
}

// Union merges the sets containing x and y and reports whether a merge happened.
//
// Steps:
//  1. Resolve both roots via FindSet (ErrOutOfRange for an unallocated handle).
//  2. If the roots coincide, return false; the arena is left untouched.
//  3. Attach the lower-rank root under the higher-rank root and add its size.
//  4. On equal ranks attach y's root under x's root and bump x's root rank by one.
//
// Complexity: O(α(n)) amortized.
func (c *Core) Union(x, y int) (bool, error) {
	if err := c.check(x); err != nil {
		return false, err
	}
	if err := c.check(y); err != nil {
		return false, err
	}

	rx, ry := c.find(x), c.find(y)
	if rx == ry {
		return false, nil
	}

	switch {
	case c.nodes[rx].rank > c.nodes[ry].rank:
		c.link(ry, rx)
	case c.nodes[rx].rank < c.nodes[ry].rank:
		c.link(rx, ry)
	default:
		c.link(ry, rx)
		c.nodes[rx].rank++
	}
	c.count--

	return true, nil
}

// SizeOf returns the number of elements in the set containing x.
func (c *Core) SizeOf(x int) (int, error) {
	if err := c.check(x); err != nil {
		return 0, err
	}

	return c.nodes[c.find(x)].size, nil
}

// Rank returns the rank of the root of the set containing x.
func (c *Core) Rank(x int) (int, error) {
	if err := c.check(x); err != nil {
		return 0, err
	}

	return c.nodes[c.find(x)].rank, nil
}

// link hangs root child under root parent and folds its size in.
// Both arguments must be distinct roots.
func (c *Core) link(child, parent int) {
	c.nodes[child].parent = parent
	c.nodes[parent].size += c.nodes[child].size
}

// find is FindSet without bounds checking.
func (c *Core) find(x int) int {
	root := x
	for c.nodes[root].parent != noParent {
		root = c.nodes[root].parent
	}
	// Compression pass: every node on the path now points at root.
	for x != root {
		next := c.nodes[x].parent
		c.nodes[x].parent = root
		x = next
	}

	return root
}

// depth counts parent hops from x to its root without compressing.
func (c *Core) depth(x int) int {
	d := 0
	for c.nodes[x].parent != noParent {
		x = c.nodes[x].parent
		d++
	}

	return d
}

func (c *Core) check(x int) error {
	if x < 0 || x >= len(c.nodes) {
		return fmt.Errorf("%w: %d (allocated %d)", ErrOutOfRange, x, len(c.nodes))
	}

	return nil
}
