package linkage_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/linkage"
)

// ExampleCluster cuts the square a-b(1), a-c(4), b-d(3), c-d(2) into two clusters.
//
//	a──1──b
//	│     │
//	4     3
//	│     │
//	c──2──d
func ExampleCluster() {
	nodes := []string{"a", "b", "c", "d"}
	edges := []linkage.Edge[string]{{U: "a", V: "b"}, {U: "a", V: "c"}, {U: "b", V: "d"}, {U: "c", V: "d"}}
	weights := map[linkage.Edge[string]]float64{edges[0]: 1, edges[1]: 4, edges[2]: 3, edges[3]: 2}

	res, err := linkage.Cluster(nodes, edges, func(e linkage.Edge[string]) float64 { return weights[e] }, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Clusters, "height:", res.Height)
	// Output: [[a b] [c d]] height: 2
}

// ExampleClusterGraph shows the under-capacity policy on a graph with an isolated vertex.
func ExampleClusterGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("x", "y", 1)
	_ = g.AddVertex("z")

	_, err := linkage.ClusterGraph(g, 1)
	fmt.Println(errors.Is(err, linkage.ErrUnderCapacity))

	res, _ := linkage.ClusterGraph(g, 1, linkage.WithPartialResult())
	fmt.Println(res.Clusters, res.Requested, res.Achieved)
	// Output:
	// true
	// [[x y] [z]] 1 2
}

// ExampleClusterPoints groups points on a line.
func ExampleClusterPoints() {
	points := [][]float64{{0}, {0.5}, {5}, {5.2}, {9}}

	res, _ := linkage.ClusterPoints(points, 3)
	fmt.Println(res.Clusters)
	// Output: [[0 1] [2 3] [4]]
}
