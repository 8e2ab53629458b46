package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vmini/internal/config"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestApplyServeOverrides(t *testing.T) {
	var opts serveOptions
	cmd := &cobra.Command{Use: "serve"}
	bindServeFlags(cmd, &opts)
	if err := cmd.ParseFlags([]string{"--app", "todo", "--addr", ":9000", "--metrics"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	cfg.Data = "keep.yaml"
	cfg.Server.Title = "Playground"
	applyServeOverrides(cfg, cmd, opts)

	if cfg.App != "todo" || cfg.Server.Addr != ":9000" || !cfg.Server.Metrics {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Data != "keep.yaml" || cfg.Watch || cfg.Server.Title != "Playground" {
		t.Errorf("unset flags changed config: %+v", cfg)
	}
}

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", rec.Code)
	}
	return rec.Body.String()
}

func TestSetupServeAppliesDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counter.yaml")
	if err := os.WriteFile(path, []byte("count: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	cfg.Data = path

	srv, err := setupServe(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("setupServe: %v", err)
	}
	if !strings.Contains(srv.HTML(), `<p id="count">4</p>`) {
		t.Errorf("HTML() = %q", srv.HTML())
	}
	if text := scrape(t, srv); strings.Contains(text, "vmini_renders_total") || strings.Contains(text, "go_goroutines") {
		t.Errorf("metrics recorded without --metrics:\n%s", text)
	}
}

func TestSetupServeMetrics(t *testing.T) {
	cfg := config.New()
	cfg.Server.Metrics = true

	srv, err := setupServe(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("setupServe: %v", err)
	}
	text := scrape(t, srv)
	for _, want := range []string{
		`vmini_renders_total{phase="mount"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func waitForHTML(t *testing.T, html func() string, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(html(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q, HTML() = %q", want, html())
}

func TestSetupServeWatchesDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counter.yaml")
	if err := os.WriteFile(path, []byte("count: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	cfg.Data = path
	cfg.Watch = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, err := setupServe(ctx, cfg, quiet)
	if err != nil {
		t.Fatalf("setupServe: %v", err)
	}
	waitForHTML(t, srv.HTML, `<p id="count">2</p>`)

	if err := os.WriteFile(path, []byte("count: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitForHTML(t, srv.HTML, `<p id="count">9</p>`)
}

func TestSetupServeErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*config.Config)
	}{
		{"unknown app", func(c *config.Config) { c.App = "nope" }},
		{"missing data", func(c *config.Config) { c.Data = filepath.Join(t.TempDir(), "nope.yaml") }},
		{"missing watched data", func(c *config.Config) {
			c.Data = filepath.Join(t.TempDir(), "nope.yaml")
			c.Watch = true
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.cfg(cfg)
			if _, err := setupServe(context.Background(), cfg, quiet); err == nil {
				t.Error("expected error")
			}
		})
	}
}
