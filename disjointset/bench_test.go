package disjointset_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/slink/disjointset"
)

// BenchmarkCore_UnionFind measures a random mix of unions and finds over 10k handles.
func BenchmarkCore_UnionFind(b *testing.B) {
	const n = 10_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := disjointset.NewCore(n)
		for j := 0; j < n; j++ {
			c.MakeSet()
		}
		for _, p := range pairs {
			_, _ = c.Union(p[0], p[1])
			_, _ = c.FindSet(p[1])
		}
	}
}

// BenchmarkForest_Union measures the adapter overhead with string elements.
func BenchmarkForest_Union(b *testing.B) {
	const n = 2_000
	elems := make([]string, n)
	for i := range elems {
		elems[i] = "v" + strconv.Itoa(i)
	}
	r := rand.New(rand.NewSource(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, err := disjointset.NewForest(elems)
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < n; j++ {
			_, _ = f.Union(elems[r.Intn(n)], elems[r.Intn(n)])
		}
	}
}
