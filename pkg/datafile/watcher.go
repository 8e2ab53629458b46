package datafile

import (
	"context"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/flux"
)

// Watcher watches a data file and emits its decoded contents.
type Watcher struct {
	path   string
	source flux.Watcher
}

// NewWatcher creates a Watcher for the given file path.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: path, source: flux.NewFileWatcher(path)}
}

// Watch begins watching the file and returns a channel that emits the
// decoded contents whenever the file is written. The current contents are
// emitted immediately. Contents that fail to decode are reported through
// DataDecodeFailed and skipped. The channel closes when ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan map[string]any, error) {
	raw, err := w.source.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan map[string]any)
	go func() {
		defer close(out)
		for data := range raw {
			values, err := Decode(data)
			if err != nil {
				capitan.Emit(ctx, DataDecodeFailed,
					KeyPath.Field(w.path),
					KeyError.Field(err.Error()),
				)
				continue
			}
			select {
			case out <- values:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
