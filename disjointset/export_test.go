package disjointset

// Depth exposes the uncompressed distance from x to its root for tests.
func (c *Core) Depth(x int) int { return c.depth(x) }

// SetParentForTest builds a raw parent chain so tests can observe compression
// on paths that union by rank would never produce.
func (c *Core) SetParentForTest(child, parent int) {
	c.nodes[child].parent = parent
	c.count--
}
