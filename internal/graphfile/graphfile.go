// Package graphfile reads clustering inputs from TOML documents:
//
//	metric   = "weight"    # or "euclidean"
//	complete = false       # euclidean only: use every pair of points
//
//	[[node]]
//	id    = "a"
//	point = [0.0, 1.0]
//
//	[[edge]]
//	from   = "a"
//	to     = "b"
//	weight = 1.0
package graphfile

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hashicorp/go-multierror"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/linkage"
)

// Supported metrics.
const (
	MetricWeight    = "weight"
	MetricEuclidean = "euclidean"
)

// ErrInvalidDocument is wrapped by every validation failure.
var ErrInvalidDocument = errors.New("graphfile: invalid document")

// Node is a [[node]] table.
type Node struct {
	ID    string    `toml:"id"`
	Point []float64 `toml:"point,omitempty"`
}

// Edge is an [[edge]] table.
type Edge struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// Document is a decoded graph file.
type Document struct {
	Metric   string `toml:"metric"`
	Complete bool   `toml:"complete"`
	Nodes    []Node `toml:"node"`
	Edges    []Edge `toml:"edge"`
}

// Load opens path and decodes it.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "graphfile: open")
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "graphfile: %s", path)
	}

	return doc, nil
}

// Decode parses a TOML document, rejecting unknown keys, and validates it.
// An empty metric defaults to MetricWeight.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "graphfile: decode")
	}
	if doc.Metric == "" {
		doc.Metric = MetricWeight
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate reports every structural problem at once.
func (d *Document) Validate() error {
	var errs *multierror.Error
	fail := func(format string, args ...interface{}) {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrInvalidDocument, fmt.Sprintf(format, args...)))
	}

	switch d.Metric {
	case MetricWeight:
		if d.Complete {
			fail("complete requires metric %q", MetricEuclidean)
		}
	case MetricEuclidean:
	default:
		fail("unknown metric %q", d.Metric)
	}

	ids := make(map[string]bool, len(d.Nodes))
	for i, n := range d.Nodes {
		switch {
		case n.ID == "":
			fail("node %d has no id", i)
		case ids[n.ID]:
			fail("node %q declared twice", n.ID)
		}
		ids[n.ID] = true
		if d.Metric == MetricEuclidean && len(n.Point) != len(d.Nodes[0].Point) {
			fail("node %q has %d coordinates, node %q has %d", n.ID, len(n.Point), d.Nodes[0].ID, len(d.Nodes[0].Point))
		}
		if d.Metric == MetricEuclidean && len(n.Point) == 0 {
			fail("node %q has no point", n.ID)
		}
	}

	for i, e := range d.Edges {
		if !ids[e.From] {
			fail("edge %d: unknown node %q", i, e.From)
		}
		if !ids[e.To] {
			fail("edge %d: unknown node %q", i, e.To)
		}
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			fail("edge %d: weight %v", i, e.Weight)
		}
	}

	return errs.ErrorOrNil()
}

// Graph materializes the document. For the euclidean metric the edge weights are
// replaced by point distances, and with complete = true every pair is connected.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	points := make(map[string][]float64, len(d.Nodes))
	for _, n := range d.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, errors.Wrapf(err, "graphfile: node %q", n.ID)
		}
		points[n.ID] = n.Point
	}

	weight := func(from, to string, w float64) float64 {
		if d.Metric == MetricEuclidean {
			return floats.Distance(points[from], points[to], 2)
		}
		return w
	}

	if d.Complete {
		for i := range d.Nodes {
			for j := i + 1; j < len(d.Nodes); j++ {
				u, v := d.Nodes[i].ID, d.Nodes[j].ID
				if _, err := g.AddEdge(u, v, weight(u, v, 0)); err != nil {
					return nil, errors.Wrapf(err, "graphfile: pair %s-%s", u, v)
				}
			}
		}

		return g, nil
	}

	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, weight(e.From, e.To, e.Weight)); err != nil {
			return nil, errors.Wrapf(err, "graphfile: edge %d", i)
		}
	}

	return g, nil
}

// Cluster builds the graph and runs single-linkage clustering on it.
func (d *Document) Cluster(k int, opts ...linkage.Option) (*linkage.Result[string], error) {
	g, err := d.Graph()
	if err != nil {
		return nil, err
	}

	return linkage.ClusterGraph(g, k, opts...)
}
