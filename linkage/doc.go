// Package linkage partitions the nodes of an undirected weighted graph into k
// clusters by single-linkage (nearest-neighbour) agglomeration.
//
// What & Why
//
//   - Single-linkage clustering repeatedly merges the two clusters whose closest
//     members are nearest to each other. Cutting that hierarchy at k clusters is
//     exactly a minimum spanning forest with k components: Kruskal's algorithm
//     stopped early.
//
//   - Typical uses: grouping near-duplicate records, splitting a sensor network
//     into zones, detecting elongated or chained clusters that centroid methods miss.
//
// Algorithm (Cluster)
//
//  1. Reject k < 1 or k > |nodes| before touching anything (ErrInvalidK).
//  2. Seed a disjointset.Forest with one singleton per node.
//  3. Canonicalize every edge to (lower handle, higher handle), drop repeats and
//     self-loops, evaluate the distance once per surviving edge.
//  4. Stable-sort by ascending distance; equal distances keep input order.
//  5. Scan: stop the moment the live set count equals k; otherwise union the
//     endpoints, counting down only when the union actually joined two sets.
//  6. Read the partition out of the forest, grouped by representative.
//
// Complexity: O(E log E + (V+E)·α(V)) time, O(V+E) memory.
//
// Fewer merges than needed
//
//	When the edges cannot connect the nodes down to k groups (the graph has more
//	than k connected components), Cluster fails with ErrUnderCapacity. Pass
//	WithPartialResult() to receive the best reachable partition instead; the
//	returned Result then reports Achieved > Requested and UnderCapacity() == true.
//
// Adapters
//
//   - ClusterGraph  : vertices and weights of a *core.Graph.
//   - ClusterGonum  : any gonum graph.WeightedUndirected.
//   - ClusterPoints : complete graph over points in R^d under Euclidean distance.
//
// Determinism
//
//	For identical input order the output is identical: clusters are ordered by
//	the input position of their first member and members keep input order.
//
// Concurrency
//
//	Every call builds and owns its own forest, so independent calls may run in
//	parallel. The distance function must be safe to call from the calling goroutine.
package linkage
