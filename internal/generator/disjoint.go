package generator

// components is a union-find forest over grid cell indices.
type components struct {
	parent []int
	rank   []int
	count  int
}

func newComponents(n int) *components {
	c := &components{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range c.parent {
		c.parent[i] = i
	}
	return c
}

func (c *components) find(x int) int {
	for c.parent[x] != x {
		c.parent[x] = c.parent[c.parent[x]]
		x = c.parent[x]
	}
	return x
}

// union merges the components of x and y. Reports false when they were
// already joined.
func (c *components) union(x, y int) bool {
	rootX, rootY := c.find(x), c.find(y)
	if rootX == rootY {
		return false
	}
	switch {
	case c.rank[rootX] < c.rank[rootY]:
		c.parent[rootX] = rootY
	case c.rank[rootX] > c.rank[rootY]:
		c.parent[rootY] = rootX
	default:
		c.parent[rootY] = rootX
		c.rank[rootX]++
	}
	c.count--
	return true
}
