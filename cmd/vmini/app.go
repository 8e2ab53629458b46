package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/zoobzio/capitan"

	"github.com/vango-dev/vmini"
	"github.com/vango-dev/vmini/internal/config"
	"github.com/vango-dev/vmini/internal/demo"
	"github.com/vango-dev/vmini/pkg/datafile"
	"github.com/vango-dev/vmini/pkg/dom"
	"github.com/vango-dev/vmini/pkg/metrics"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configDir string
	verbose   bool
}

// loadConfig reads vmini.yaml from the config directory, if present.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	return config.LoadOptional(f.configDir)
}

// newLogger builds the stderr text logger.
func (f *globalFlags) newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.LogLevel()
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// logDataSignals routes data file lifecycle events to logger.
func logDataSignals(logger *slog.Logger) {
	capitan.Hook(datafile.DataLoaded, func(_ context.Context, e *capitan.Event) {
		path, _ := datafile.KeyPath.From(e)
		logger.Debug("data file loaded", "path", path)
	})
	capitan.Hook(datafile.DataApplied, func(_ context.Context, e *capitan.Event) {
		changed, _ := datafile.KeyChanged.From(e)
		ignored, _ := datafile.KeyIgnored.From(e)
		logger.Info("data applied", "changed", changed, "ignored", ignored)
	})
	capitan.Hook(datafile.DataDecodeFailed, func(_ context.Context, e *capitan.Event) {
		path, _ := datafile.KeyPath.From(e)
		msg, _ := datafile.KeyError.From(e)
		logger.Warn("data file rejected", "path", path, "error", msg)
	})
}

// mountApp builds the named demo app on a fresh document and mounts it
// into the body.
func mountApp(ctx context.Context, name string, logger *slog.Logger, m *metrics.Collector) (*vmini.Instance, *dom.Document, error) {
	opts, err := demo.Options(name)
	if err != nil {
		return nil, nil, err
	}

	doc := dom.NewDocument()
	opts.Host = doc
	opts.Logger = logger.With("app", name)
	opts.Metrics = m
	opts.Context = ctx

	inst := vmini.New(opts)
	if err := inst.Mount(doc.Body()); err != nil {
		return nil, nil, err
	}
	return inst, doc, nil
}
