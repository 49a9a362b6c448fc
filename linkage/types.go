package linkage

import "errors"

// Sentinel errors. Failures from the forest layer (disjointset.ErrDuplicateElement,
// disjointset.ErrUnknownElement) are passed through wrapped.
var (
	// ErrInvalidK indicates k < 1 or k greater than the number of nodes.
	ErrInvalidK = errors.New("linkage: k must be between 1 and the number of nodes")

	// ErrNilDistance indicates that no distance function was supplied.
	ErrNilDistance = errors.New("linkage: nil distance function")

	// ErrInvalidDistance indicates a distance that is negative, NaN or infinite.
	ErrInvalidDistance = errors.New("linkage: distance must be a finite non-negative number")

	// ErrUnderCapacity indicates that the edges cannot merge the nodes down to k clusters.
	ErrUnderCapacity = errors.New("linkage: not enough edges to reach k clusters")

	// ErrNilGraph indicates a nil graph passed to an adapter.
	ErrNilGraph = errors.New("linkage: nil graph")

	// ErrDimensionMismatch indicates points of different dimensionality.
	ErrDimensionMismatch = errors.New("linkage: points have different dimensions")
)

// Edge is an undirected pair of nodes; {U,V} and {V,U} are the same edge.
type Edge[T comparable] struct {
	U, V T
}

// DistanceFunc maps an edge to a finite non-negative distance.
type DistanceFunc[T comparable] func(Edge[T]) float64

// Merge is one union performed by the scan: the spanning-forest edge and its distance.
type Merge[T comparable] struct {
	Edge     Edge[T]
	Distance float64
}

// Stats counts what the scan did with the input edges.
type Stats struct {
	EdgesIn      int // edges as supplied
	SelfLoops    int // dropped because U == V
	EdgesUnique  int // distinct undirected edges after canonicalization
	EdgesScanned int // edges examined before the scan stopped
	CycleSkips   int // scanned edges whose endpoints were already together
}

// Result is the partition produced by Cluster.
type Result[T comparable] struct {
	// Clusters are the groups, ordered by the input position of their first member.
	Clusters [][]T

	// Requested is the k passed in.
	Requested int

	// Achieved is len(Clusters). It exceeds Requested only with WithPartialResult.
	Achieved int

	// Merges lists the unions in the order they happened.
	Merges []Merge[T]

	// Height is the largest merge distance, 0 when nothing was merged.
	Height float64

	Stats Stats
}

// UnderCapacity reports whether fewer merges than requested were possible.
func (r *Result[T]) UnderCapacity() bool { return r.Achieved > r.Requested }

// Labels maps every node to the index of its cluster in Clusters.
func (r *Result[T]) Labels() map[T]int {
	n := 0
	for _, c := range r.Clusters {
		n += len(c)
	}
	out := make(map[T]int, n)
	for i, c := range r.Clusters {
		for _, v := range c {
			out[v] = i
		}
	}

	return out
}

// Options configures Cluster and the adapters.
type Options struct {
	// Partial returns the best reachable partition instead of ErrUnderCapacity.
	Partial bool
}

// Option mutates Options.
type Option func(*Options)

// WithPartialResult accepts a partition with more than k clusters when the edges
// cannot merge further.
func WithPartialResult() Option {
	return func(o *Options) { o.Partial = true }
}

// DefaultOptions returns the strict configuration: under-capacity is an error.
func DefaultOptions() Options {
	return Options{Partial: false}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
