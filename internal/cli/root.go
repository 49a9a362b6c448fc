// Package cli implements the slink command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/slink/internal/config"
	"github.com/katalvlaran/slink/internal/graphfile"
	"github.com/katalvlaran/slink/internal/metrics"
	"github.com/katalvlaran/slink/linkage"
)

// version is overridden at link time with -ldflags "-X".
var version = "dev"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out, errOut io.Writer

	cfgFile string
	v       *viper.Viper
	cfg     config.Config
	log     log15.Logger
	rec     *metrics.Recorder
}

// Execute runs the command tree against the process streams and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, rec: metrics.New()}

	root := &cobra.Command{
		Use:               "slink",
		Short:             "Single-linkage clustering of weighted graphs",
		Long:              "slink cuts the minimum spanning forest of a graph into k clusters.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default .slink.toml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error, crit")

	root.AddCommand(a.clusterCommand(), a.watchCommand(), versionCommand())

	return root
}

// setup resolves configuration for the command about to run.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v = config.New(a.cfgFile)
	if err := config.Read(a.v, a.cfgFile != ""); err != nil {
		return err
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		bindErr = a.v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	if bindErr != nil {
		return errors.Wrap(bindErr, "binding flags")
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = newLogger(a.errOut, cfg.LogLevel)
	if err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("config loaded", "file", used)
	}

	return nil
}

func newLogger(w io.Writer, level string) (log15.Logger, error) {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	l := log15.New("app", "slink")
	l.SetHandler(log15.LvlFilterHandler(lvl, log15.StreamHandler(w, log15.LogfmtFormat())))

	return l, nil
}

// addClusterFlags registers the flags shared by cluster and watch.
func addClusterFlags(fs *pflag.FlagSet) {
	fs.IntP("k", "k", 2, "number of clusters")
	fs.Bool("partial", false, "return the reachable partition instead of failing when k cannot be reached")
	fs.String("format", config.FormatText, "output format: text or toml")
}

// cluster loads path and clusters it with the current configuration.
func (a *app) cluster(path string) (*linkage.Result[string], error) {
	start := time.Now()
	res, err := a.clusterFile(path)
	took := time.Since(start)
	a.rec.Observe(took, res, err)
	if err != nil {
		return nil, err
	}

	a.log.Info("clustered", "file", path, "k", res.Requested, "clusters", res.Achieved,
		"merges", len(res.Merges), "height", res.Height, "took", took)
	a.log.Debug("scan", "edges_in", res.Stats.EdgesIn, "unique", res.Stats.EdgesUnique,
		"self_loops", res.Stats.SelfLoops, "scanned", res.Stats.EdgesScanned, "cycle_skips", res.Stats.CycleSkips)
	if res.UnderCapacity() {
		a.log.Warn("edges cannot reach k clusters", "requested", res.Requested, "achieved", res.Achieved)
	}

	return res, nil
}

func (a *app) clusterFile(path string) (*linkage.Result[string], error) {
	doc, err := graphfile.Load(path)
	if err != nil {
		return nil, err
	}
	var opts []linkage.Option
	if a.cfg.Partial {
		opts = append(opts, linkage.WithPartialResult())
	}
	res, err := doc.Cluster(a.cfg.K, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "clustering %s", path)
	}

	return res, nil
}

// render writes res in the configured format.
func (a *app) render(res *linkage.Result[string]) error {
	if a.cfg.Format == config.FormatTOML {
		return graphfile.NewReport(res).WriteTOML(a.out)
	}

	for i, c := range res.Clusters {
		if _, err := fmt.Fprintf(a.out, "cluster %d (%d): %s\n", i+1, len(c), strings.Join(c, " ")); err != nil {
			return err
		}
	}

	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the slink version",
		Args:  cobra.NoArgs,
		// No config needed to print a version string.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "slink", version)
			return err
		},
	}
}
