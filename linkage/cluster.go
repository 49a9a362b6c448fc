package linkage

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/slink/disjointset"
)

// candidate is a canonicalized edge waiting for the scan.
type candidate[T comparable] struct {
	edge Edge[T]
	dist float64
}

// Cluster partitions nodes into k single-linkage clusters.
//
// Error Conditions:
//   - ErrInvalidK                     : k < 1 or k > len(nodes); checked first.
//   - ErrNilDistance                  : dist == nil.
//   - disjointset.ErrDuplicateElement : a node appears twice.
//   - disjointset.ErrUnknownElement   : an edge endpoint is not among nodes.
//   - ErrInvalidDistance              : dist returned a negative, NaN or infinite value.
//   - ErrUnderCapacity                : the edges connect fewer pairs than needed to
//     reach k clusters (suppressed by WithPartialResult).
//
// Steps:
//  1. Validate k and dist.
//  2. Build the forest over nodes (one set each).
//  3. Canonicalize edges by forest handle, skipping self-loops and repeats;
//     every endpoint is checked and every distance validated here, before any union.
//  4. Stable sort by ascending distance.
//  5. Scan until the live set count equals k, uniting non-cycle edges.
//  6. Group nodes by representative.
//
// On error the returned Result is nil.
//
// Complexity: O(E log E + (V+E)·α(V)). Memory: O(V+E).
func Cluster[T comparable](nodes []T, edges []Edge[T], dist DistanceFunc[T], k int, opts ...Option) (*Result[T], error) {
	o := buildOptions(opts)

	// 1. Validate before any processing.
	if k < 1 || k > len(nodes) {
		return nil, fmt.Errorf("%w: k=%d, nodes=%d", ErrInvalidK, k, len(nodes))
	}
	if dist == nil {
		return nil, ErrNilDistance
	}

	// 2. One singleton set per node.
	forest, err := disjointset.NewForest(nodes)
	if err != nil {
		return nil, fmt.Errorf("linkage: building forest: %w", err)
	}

	// 3. Canonicalize and deduplicate.
	cands, stats, err := canonicalEdges(forest, edges, dist)
	if err != nil {
		return nil, err
	}

	// 4. Ascending distance; stable so ties keep input order.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	// 5. Greedy scan, stopping the instant k sets remain.
	var (
		merges = make([]Merge[T], 0, len(nodes)-k)
		live   = forest.Count()
		height float64
	)
	for _, c := range cands {
		if live == k {
			break
		}
		stats.EdgesScanned++
		joined, err := forest.Union(c.edge.U, c.edge.V)
		if err != nil {
			return nil, err
		}
		if !joined {
			// Both endpoints already share a cluster; taking the edge would close a cycle.
			stats.CycleSkips++
			continue
		}
		live--
		merges = append(merges, Merge[T]{Edge: c.edge, Distance: c.dist})
		height = math.Max(height, c.dist)
	}

	if live > k && !o.Partial {
		return nil, fmt.Errorf("%w: requested %d, edges leave %d", ErrUnderCapacity, k, live)
	}

	// 6. Partition readout.
	clusters := forest.Sets()

	return &Result[T]{
		Clusters:  clusters,
		Requested: k,
		Achieved:  len(clusters),
		Merges:    merges,
		Height:    height,
		Stats:     stats,
	}, nil
}

// canonicalEdges drops self-loops and repeated undirected edges, keeping the
// first-seen orientation of each, and evaluates dist once per kept edge.
func canonicalEdges[T comparable](forest *disjointset.Forest[T], edges []Edge[T], dist DistanceFunc[T]) ([]candidate[T], Stats, error) {
	stats := Stats{EdgesIn: len(edges)}
	seen := make(map[[2]int]struct{}, len(edges))
	out := make([]candidate[T], 0, len(edges))

	for _, e := range edges {
		iu, ok := forest.ID(e.U)
		if !ok {
			return nil, stats, fmt.Errorf("%w: edge endpoint %v", disjointset.ErrUnknownElement, e.U)
		}
		iv, ok := forest.ID(e.V)
		if !ok {
			return nil, stats, fmt.Errorf("%w: edge endpoint %v", disjointset.ErrUnknownElement, e.V)
		}
		if iu == iv {
			stats.SelfLoops++
			continue
		}
		if iu > iv {
			iu, iv = iv, iu
		}
		key := [2]int{iu, iv}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		d := dist(e)
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, stats, fmt.Errorf("%w: %v for edge %v-%v", ErrInvalidDistance, d, e.U, e.V)
		}
		out = append(out, candidate[T]{edge: e, dist: d})
	}
	stats.EdgesUnique = len(out)

	return out, stats, nil
}
