package datafile

import (
	"context"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/zoobzio/capitan"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/reactive"
)

// Load reads and decodes the file at path.
func Load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E020").WithDetail("cannot read " + path).Wrap(err)
	}
	values, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	capitan.Emit(context.Background(), DataLoaded, KeyPath.Field(path))
	return values, nil
}

// Decode parses a YAML (or JSON) mapping. An empty document decodes to an
// empty mapping.
func Decode(raw []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.New("E021").Wrap(err)
	}
	if doc == nil {
		return map[string]any{}, nil
	}
	values, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New("E021").WithDetail("top-level value is not a mapping")
	}
	return values, nil
}

// ParseAssignment parses "key=value". The value is decoded as a YAML scalar
// or flow collection, so "3" is an int, "true" a bool and "[a, b]" a list.
// An empty value is the empty string.
func ParseAssignment(s string) (string, any, error) {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, errors.New("E021").WithDetail("assignment " + s + " is not key=value")
	}
	if strings.TrimSpace(raw) == "" {
		return key, "", nil
	}
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return "", nil, errors.New("E021").WithDetail("value of " + key).Wrap(err)
	}
	return key, value, nil
}

// Result reports what Apply did.
type Result struct {
	// Changed are the data keys written, in write order.
	Changed []string

	// Ignored are keys the store does not declare as data.
	Ignored []string
}

// Apply writes values into s in sorted key order. Keys that are not data
// keys are ignored and values equal to the current ones are skipped. The
// first notification error stops the remaining writes.
func Apply(s *reactive.Store, values map[string]any) (Result, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	current := s.Snapshot()

	var res Result
	for _, k := range keys {
		old, ok := current[k]
		if !ok {
			res.Ignored = append(res.Ignored, k)
			continue
		}
		if reflect.DeepEqual(old, values[k]) {
			continue
		}
		res.Changed = append(res.Changed, k)
		if err := s.Set(k, values[k]); err != nil {
			return res, err
		}
	}

	capitan.Emit(context.Background(), DataApplied,
		KeyChanged.Field(len(res.Changed)),
		KeyIgnored.Field(len(res.Ignored)),
	)
	return res, nil
}
