package vmini

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vmini/pkg/dom"
	"github.com/vango-dev/vmini/pkg/metrics"
)

// tracerName is the default OpenTelemetry tracer name.
const tracerName = "vmini"

// RenderFunc builds the descriptor tree for the current data.
type RenderFunc func(s *Store, h CreateElement) *Node

// Options configures an Instance. Options are read once by New.
type Options struct {
	// Data returns the initial backing data. It is called exactly once.
	// If nil, the instance starts with no data keys.
	Data func() map[string]any

	// Methods are exposed through the store, bound to it.
	Methods map[string]Method

	// Render is required; Mount fails without it.
	Render RenderFunc

	// Mounted runs once after the first tree is attached.
	Mounted func(s *Store) error

	// Host is the rendering surface.
	// If nil, Mount adopts the document of a *dom.Node root. Otherwise a
	// fresh dom.NewDocument() is used.
	Host dom.Host

	// Logger is the structured logger for the instance.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics records render cycles. If nil, nothing is recorded.
	Metrics *metrics.Collector

	// Tracer creates spans around mount and update.
	// If nil, the global provider's "vmini" tracer is used.
	Tracer trace.Tracer

	// Context is the parent context for spans.
	// If nil, context.Background() is used.
	Context context.Context
}

func (o Options) withDefaults() Options {
	if o.Host == nil {
		o.Host = dom.NewDocument()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Tracer == nil {
		o.Tracer = otel.Tracer(tracerName)
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	return o
}
