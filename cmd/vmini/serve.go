package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"

	"github.com/vango-dev/vmini/internal/config"
	"github.com/vango-dev/vmini/pkg/datafile"
	"github.com/vango-dev/vmini/pkg/metrics"
	"github.com/vango-dev/vmini/pkg/server"
)

// serveOptions are the flags of the serve command.
type serveOptions struct {
	app     string
	addr    string
	data    string
	watch   bool
	metrics bool
}

func serveCmd(flags *globalFlags) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the playground server",
		Long: `Serve an app in the browser. Clicks and inputs are sent back to the
server, and every re-render is pushed to all open pages over a WebSocket.

With --watch the data file is re-applied whenever it is saved.

Examples:
  vmini serve --app counter
  vmini serve --app todo --addr :9000
  vmini serve --app counter --data counter.yaml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			applyServeOverrides(cfg, cmd, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), flags, cfg)
		},
	}

	bindServeFlags(cmd, &opts)
	return cmd
}

func bindServeFlags(cmd *cobra.Command, opts *serveOptions) {
	cmd.Flags().StringVarP(&opts.app, "app", "a", "", "App to serve (default from vmini.yaml, else counter)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default :8080)")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "YAML or JSON data file applied after mount")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-apply the data file when it changes")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Record render metrics for GET /metrics")
}

// applyServeOverrides copies explicitly set flags over config values.
func applyServeOverrides(cfg *config.Config, cmd *cobra.Command, opts serveOptions) {
	if cmd.Flags().Changed("app") {
		cfg.App = opts.app
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = opts.addr
	}
	if cmd.Flags().Changed("data") {
		cfg.Data = opts.data
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = opts.watch
	}
	if cmd.Flags().Changed("metrics") {
		cfg.Server.Metrics = opts.metrics
	}
}

func runServe(ctx context.Context, flags *globalFlags, cfg *config.Config) error {
	logger := flags.newLogger(cfg)
	logDataSignals(logger)
	defer capitan.Shutdown()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := setupServe(ctx, cfg, logger)
	if err != nil {
		return err
	}

	info("Serving %s on %s", cfg.App, cfg.Server.Addr)
	return srv.Run(ctx)
}

// setupServe mounts the app, builds the server and applies the data file.
// With cfg.Watch the file keeps being applied until ctx is done.
func setupServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*server.Server, error) {
	reg := prometheus.NewRegistry()
	var collector *metrics.Collector
	if cfg.Server.Metrics {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collector = metrics.New(metrics.WithRegistry(reg))
	}

	inst, doc, err := mountApp(ctx, cfg.App, logger, collector)
	if err != nil {
		return nil, err
	}

	srv, err := server.New(inst, doc.Body(), server.Config{
		Address:  cfg.Server.Addr,
		Title:    cfg.Server.Title,
		Gatherer: reg,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	path := cfg.DataPath()
	switch {
	case path == "":
	case cfg.Watch:
		if err := watchData(ctx, srv, path); err != nil {
			return nil, err
		}
	default:
		values, err := datafile.Load(path)
		if err != nil {
			return nil, err
		}
		if _, err := srv.Apply(values); err != nil {
			return nil, err
		}
	}
	return srv, nil
}

// watchData applies the data file now and again after every save.
func watchData(ctx context.Context, srv *server.Server, path string) error {
	updates, err := datafile.NewWatcher(path).Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for values := range updates {
			// Apply logs and broadcasts its own failures.
			_, _ = srv.Apply(values)
		}
	}()
	return nil
}
