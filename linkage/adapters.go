package linkage

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/slink/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
)

// ClusterGraph clusters the vertices of g using edge weights as distances.
// Vertices are taken in sorted ID order and edges in insertion order, so the
// result is reproducible for a given graph.
func ClusterGraph(g *core.Graph, k int, opts ...Option) (*Result[string], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	nodes := g.Vertices()
	raw := g.Edges()
	edges := make([]Edge[string], len(raw))
	weight := make(map[Edge[string]]float64, len(raw))
	for i, e := range raw {
		edges[i] = Edge[string]{U: e.From, V: e.To}
		weight[edges[i]] = e.Weight
	}

	return Cluster(nodes, edges, func(e Edge[string]) float64 { return weight[e] }, k, opts...)
}

// ClusterGonum clusters a gonum weighted undirected graph by node ID.
// Nodes and neighbours are visited in ascending ID order; each undirected edge
// is emitted once with U < V.
func ClusterGonum(g graph.WeightedUndirected, k int, opts ...Option) (*Result[int64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	nodes := sortedIDs(g.Nodes())
	var edges []Edge[int64]
	for _, u := range nodes {
		for _, v := range sortedIDs(g.From(u)) {
			if u < v {
				edges = append(edges, Edge[int64]{U: u, V: v})
			}
		}
	}
	dist := func(e Edge[int64]) float64 {
		return g.WeightedEdgeBetween(e.U, e.V).Weight()
	}

	return Cluster(nodes, edges, dist, k, opts...)
}

// ClusterPoints clusters points in R^d over the complete graph of pairwise
// Euclidean distances. Nodes are point indices.
func ClusterPoints(points [][]float64, k int, opts ...Option) (*Result[int], error) {
	if err := checkDims(points); err != nil {
		return nil, err
	}

	nodes := make([]int, len(points))
	for i := range nodes {
		nodes[i] = i
	}
	edges := make([]Edge[int], 0, len(points)*(len(points)-1)/2)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			edges = append(edges, Edge[int]{U: i, V: j})
		}
	}

	return Cluster(nodes, edges, Euclidean(points), k, opts...)
}

// Euclidean returns the L2 distance between the points indexed by an edge.
// All points must share one dimension; floats.Distance panics otherwise.
func Euclidean(points [][]float64) DistanceFunc[int] {
	return func(e Edge[int]) float64 {
		return floats.Distance(points[e.U], points[e.V], 2)
	}
}

func checkDims(points [][]float64) error {
	for i := 1; i < len(points); i++ {
		if len(points[i]) != len(points[0]) {
			return fmt.Errorf("%w: point 0 has %d, point %d has %d",
				ErrDimensionMismatch, len(points[0]), i, len(points[i]))
		}
	}

	return nil
}

func sortedIDs(it graph.Nodes) []int64 {
	ids := make([]int64, 0, max(it.Len(), 0)) // Len may be negative when unknown
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
