package linkage_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/slink/linkage"
)

// BenchmarkCluster measures a 2000-node sparse graph cut into 10 clusters.
func BenchmarkCluster(b *testing.B) {
	g := genGraph(2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = linkage.Cluster(g.nodes, g.edges, g.dist, 10)
	}
}

// BenchmarkClusterPoints measures the complete-graph path on 300 points in R^3.
func BenchmarkClusterPoints(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	points := make([][]float64, 300)
	for i := range points {
		points[i] = []float64{r.Float64(), r.Float64(), r.Float64()}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = linkage.ClusterPoints(points, 5)
	}
}
