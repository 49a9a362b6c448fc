// Package slink is single-linkage clustering on top of a disjoint-set forest.
//
// Given a set of items and weighted pairs between them, slink merges the
// closest pairs first (Kruskal order) and stops as soon as exactly k groups
// remain. The result is the k-cluster partition with maximum spacing.
//
// Packages:
//
//	disjointset/        - union-find with union by rank and path compression,
//	                      an int-indexed Core and a generic Forest[T]
//	linkage/            - Cluster, plus adapters for core.Graph, gonum graphs and points
//	core/               - thread-safe, float-weighted undirected graph used as input
//	internal/graphfile/ - TOML graph documents and result reports
//	internal/config/    - flag, SLINK_* env and .slink.toml configuration
//	internal/metrics/   - Prometheus counters for clustering runs
//	internal/watch/     - debounced fsnotify file watching
//	internal/cli/       - the slink cobra command tree
//	cmd/slink/          - the binary
//
// Quick start:
//
//	res, err := linkage.Cluster(nodes, edges, dist, 3)
//	if err != nil {
//		return err
//	}
//	for _, c := range res.Clusters {
//		fmt.Println(c)
//	}
package slink
