package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slink/internal/watch"
)

func (a *app) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-cluster FILE every time it changes",
		Long: "watch clusters FILE once, then again after every change until interrupted.\n" +
			"With --metrics-addr, Prometheus metrics are served on /metrics.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.watch(ctx, args[0])
		},
	}
	addClusterFlags(cmd.Flags())
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address (empty disables)")
	cmd.Flags().Duration("debounce", 100*time.Millisecond, "quiet period before re-clustering")

	return cmd
}

func (a *app) watch(ctx context.Context, path string) error {
	if a.cfg.MetricsAddr != "" {
		srv := a.serveMetrics(a.cfg.MetricsAddr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	w, err := watch.New(path, a.cfg.Debounce)
	if err != nil {
		return err
	}
	defer w.Close()
	w.Errors = func(err error) { a.log.Warn("watch error", "err", err) }

	a.recluster(path)
	a.log.Info("watching", "file", path, "debounce", a.cfg.Debounce)

	return w.Run(ctx, func() { a.recluster(path) })
}

// recluster runs one cycle; failures are logged so the watch keeps going.
func (a *app) recluster(path string) {
	res, err := a.cluster(path)
	if err != nil {
		a.log.Error("clustering failed", "file", path, "err", err)
		return
	}
	if err := a.render(res); err != nil {
		a.log.Error("writing result", "err", err)
	}
}

func (a *app) serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.rec.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server", "addr", addr, "err", err)
		}
	}()
	a.log.Info("serving metrics", "addr", addr)

	return srv
}
