package graphfile

import (
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/slink/linkage"
)

// Report is the TOML rendering of a clustering result.
type Report struct {
	Requested int       `toml:"requested"`
	Achieved  int       `toml:"achieved"`
	Height    float64   `toml:"height"`
	Clusters  []Members `toml:"cluster"`
}

// Members is one [[cluster]] table.
type Members struct {
	Members []string `toml:"members"`
}

// NewReport converts a result into its TOML shape.
func NewReport(res *linkage.Result[string]) Report {
	r := Report{
		Requested: res.Requested,
		Achieved:  res.Achieved,
		Height:    res.Height,
		Clusters:  make([]Members, len(res.Clusters)),
	}
	for i, c := range res.Clusters {
		r.Clusters[i] = Members{Members: c}
	}

	return r
}

// WriteTOML encodes r to w.
func (r Report) WriteTOML(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(r), "graphfile: encode report")
}
