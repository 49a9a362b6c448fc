package linkage_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/slink/linkage"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// weightedGraph is a random connected graph over nodes 0..n-1.
type weightedGraph struct {
	nodes []int
	edges []linkage.Edge[int]
	w     map[[2]int]float64 // keyed by (min, max) so both orientations agree
}

func pairKey(e linkage.Edge[int]) [2]int {
	if e.U > e.V {
		return [2]int{e.V, e.U}
	}
	return [2]int{e.U, e.V}
}

func (g weightedGraph) dist(e linkage.Edge[int]) float64 { return g.w[pairKey(e)] }

// genGraph draws a size and a seed, then builds a spanning chain plus extra edges.
// Weights are small integers so that ties are frequent.
func genGraph(n int, seed int64) weightedGraph {
	r := rand.New(rand.NewSource(seed))
	g := weightedGraph{w: make(map[[2]int]float64)}
	for i := 0; i < n; i++ {
		g.nodes = append(g.nodes, i)
	}
	add := func(u, v int) {
		e := linkage.Edge[int]{U: u, V: v}
		g.edges = append(g.edges, e)
		if _, ok := g.w[pairKey(e)]; !ok {
			g.w[pairKey(e)] = float64(r.Intn(5))
		}
	}
	perm := r.Perm(n)
	for i := 1; i < n; i++ {
		add(perm[i-1], perm[i])
	}
	for i := 0; i < 2*n; i++ {
		add(r.Intn(n), r.Intn(n))
	}

	return g
}

// TestProperties_Cluster checks partition-level invariants on random connected graphs.
func TestProperties_Cluster(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 150
	properties := gopter.NewProperties(params)

	graphs := gen.IntRange(1, 30)
	seeds := gen.Int64()
	ks := gen.IntRange(1, 30)

	properties.Property("connected graph yields exactly k disjoint covering clusters", prop.ForAll(
		func(n int, seed int64, kRaw int) bool {
			g := genGraph(n, seed)
			k := 1 + (kRaw-1)%n
			res, err := linkage.Cluster(g.nodes, g.edges, g.dist, k)
			if err != nil || len(res.Clusters) != k || res.Achieved != k {
				return false
			}
			seen := make(map[int]bool, n)
			for _, c := range res.Clusters {
				if len(c) == 0 {
					return false
				}
				for _, v := range c {
					if seen[v] {
						return false
					}
					seen[v] = true
				}
			}
			return len(seen) == n && len(res.Merges) == n-k
		},
		graphs, seeds, ks,
	))

	properties.Property("no edge between clusters is shorter than the cut height", prop.ForAll(
		func(n int, seed int64, kRaw int) bool {
			g := genGraph(n, seed)
			k := 1 + (kRaw-1)%n
			res, err := linkage.Cluster(g.nodes, g.edges, g.dist, k)
			if err != nil {
				return false
			}
			labels := res.Labels()
			for _, e := range g.edges {
				if labels[e.U] != labels[e.V] && g.dist(e) < res.Height {
					return false
				}
			}
			return true
		},
		graphs, seeds, ks,
	))

	properties.Property("merges are non-decreasing in distance", prop.ForAll(
		func(n int, seed int64) bool {
			g := genGraph(n, seed)
			res, err := linkage.Cluster(g.nodes, g.edges, g.dist, 1)
			if err != nil {
				return false
			}
			for i := 1; i < len(res.Merges); i++ {
				if res.Merges[i].Distance < res.Merges[i-1].Distance {
					return false
				}
			}
			return true
		},
		graphs, seeds,
	))

	properties.Property("k equal to n leaves every node alone", prop.ForAll(
		func(n int, seed int64) bool {
			g := genGraph(n, seed)
			res, err := linkage.Cluster(g.nodes, g.edges, g.dist, n)
			if err != nil || len(res.Clusters) != n {
				return false
			}
			for i, c := range res.Clusters {
				if len(c) != 1 || c[0] != i {
					return false
				}
			}
			return len(res.Merges) == 0
		},
		graphs, seeds,
	))

	properties.TestingRun(t)
}
