package vmini

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/dom"
	"github.com/vango-dev/vmini/pkg/metrics"
	"github.com/vango-dev/vmini/pkg/reactive"
	"github.com/vango-dev/vmini/pkg/render"
	"github.com/vango-dev/vmini/pkg/vdom"
)

// State is an instance's lifecycle state.
type State uint8

const (
	StateUnmounted State = iota
	StateMounted
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateUnmounted:
		return "unmounted"
	case StateMounted:
		return "mounted"
	default:
		return "unknown"
	}
}

// Instance owns one reactive store and the single live output tree
// rendered from it.
type Instance struct {
	id    uint64
	opts  Options
	reg   *reactive.Registry
	store *reactive.Store

	// adoptHost is set when Options.Host was nil.
	adoptHost bool

	el      dom.Element
	state   State
	deps    []string
	renders int
}

// New creates an instance, evaluating opts.Data once.
func New(opts Options) *Instance {
	adoptHost := opts.Host == nil
	opts = opts.withDefaults()

	var data map[string]any
	if opts.Data != nil {
		data = opts.Data()
	}

	reg := reactive.NewRegistry()
	return &Instance{
		id:        reactive.NextID(),
		opts:      opts,
		reg:       reg,
		store:     reactive.NewStore(data, opts.Methods, reg),
		adoptHost: adoptHost,
	}
}

// Mount renders the first tree, attaches it to root when root is non-nil,
// and then runs the Mounted hook. A second call returns ErrAlreadyMounted.
// Without Options.Host, elements are created in root's document.
//
// A Mounted error is returned with the tree left attached and the instance
// mounted.
func (i *Instance) Mount(root dom.Element) (err error) {
	if i.state == StateMounted {
		return errors.New("E002")
	}
	if i.opts.Render == nil {
		return errors.New("E001").WithSuggestion("Set Options.Render")
	}

	if n, ok := root.(*dom.Node); ok && n != nil && i.adoptHost && n.Document() != nil {
		i.opts.Host = n.Document()
	}

	_, span := i.opts.Tracer.Start(i.opts.Context, "vmini.mount",
		trace.WithAttributes(attribute.Bool("vmini.root", root != nil)))
	defer func() { endSpan(span, err) }()

	start := time.Now()
	el, keys, err := i.renderPass()
	if err == nil && root != nil {
		err = root.AppendChild(el)
	}
	i.opts.Metrics.ObserveRender(metrics.PhaseMount, time.Since(start), err)
	if err != nil {
		return err
	}

	i.el = el
	i.state = StateMounted
	i.renders++
	i.resubscribe(keys)
	span.SetAttributes(attribute.Int("vmini.deps", len(keys)))
	i.opts.Logger.Debug("vmini: mounted", "instance", i.id, "deps", keys)

	if i.opts.Mounted != nil {
		return i.opts.Mounted(i.store)
	}
	return nil
}

// Update replaces the live tree with a freshly rendered one under the same
// parent, then re-derives the dependency set from the keys this pass read.
// If rendering fails the previous tree is put back.
func (i *Instance) Update() (err error) {
	if i.state != StateMounted {
		return errors.New("E003")
	}

	_, span := i.opts.Tracer.Start(i.opts.Context, "vmini.update",
		trace.WithAttributes(attribute.Int("vmini.renders", i.renders)))
	defer func() { endSpan(span, err) }()

	start := time.Now()
	old := i.el
	parent := old.Parent()
	if parent != nil {
		if err := parent.RemoveChild(old); err != nil {
			return err
		}
	}

	el, keys, err := i.renderPass()
	if err != nil {
		i.opts.Metrics.ObserveRender(metrics.PhaseUpdate, time.Since(start), err)
		if parent != nil {
			if rerr := parent.AppendChild(old); rerr != nil {
				i.opts.Logger.Error("vmini: restoring previous tree failed", "instance", i.id, "error", rerr)
			}
		}
		return err
	}

	if parent != nil {
		if err := parent.AppendChild(el); err != nil {
			i.opts.Metrics.ObserveRender(metrics.PhaseUpdate, time.Since(start), err)
			if rerr := parent.AppendChild(old); rerr != nil {
				i.opts.Logger.Error("vmini: restoring previous tree failed", "instance", i.id, "error", rerr)
			}
			return err
		}
	}
	i.opts.Metrics.ObserveRender(metrics.PhaseUpdate, time.Since(start), nil)

	i.el = el
	i.renders++
	i.resubscribe(keys)
	span.SetAttributes(attribute.Int("vmini.deps", len(keys)))
	i.opts.Logger.Debug("vmini: updated", "instance", i.id, "deps", keys, "renders", i.renders)
	return nil
}

// Watch registers cb for changes to key. Callbacks are not de-duplicated.
func (i *Instance) Watch(key string, cb Callback) (cancel func()) {
	return i.reg.Watch(key, cb)
}

// Store returns the instance's store.
func (i *Instance) Store() *Store {
	return i.store
}

// El returns the live output element, nil before mount.
func (i *Instance) El() dom.Element {
	return i.el
}

// State returns the lifecycle state.
func (i *Instance) State() State {
	return i.state
}

// Deps returns the data keys the last render pass read.
func (i *Instance) Deps() []string {
	out := make([]string, len(i.deps))
	copy(out, i.deps)
	return out
}

// Renders returns how many render cycles completed.
func (i *Instance) Renders() int {
	return i.renders
}

// renderPass runs the render function under a tracking pass and
// materializes the result.
func (i *Instance) renderPass() (dom.Element, []string, error) {
	var node *vdom.Node
	keys, err := i.store.Track(func() error {
		node = i.opts.Render(i.store, vdom.H)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if node == nil {
		return nil, nil, errors.New("E004").WithDetail("render function returned nil")
	}

	el, err := render.Materialize(i.opts.Host, node)
	if err != nil {
		return nil, nil, err
	}
	return el, keys, nil
}

// resubscribe replaces the instance's subscriptions with keys.
func (i *Instance) resubscribe(keys []string) {
	next := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		next[k] = struct{}{}
	}
	for _, k := range i.deps {
		if _, ok := next[k]; !ok {
			i.reg.Unsubscribe(k, i.id)
		}
	}
	for _, k := range keys {
		i.reg.Subscribe(k, i.id, i.onChange(k))
	}
	i.deps = keys
	i.opts.Metrics.SetDependencies(len(keys))
}

func (i *Instance) onChange(key string) Callback {
	return func(prev, next any) error {
		i.opts.Metrics.Notified()
		i.opts.Logger.Debug("vmini: dependency changed", "instance", i.id, "key", key)
		return i.Update()
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
