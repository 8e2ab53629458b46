// Package demo provides the built-in apps the vmini CLI renders and serves.
package demo

import (
	"fmt"
	"sort"

	"github.com/vango-dev/vmini"
)

// factories maps app names to option builders.
var factories = map[string]func() vmini.Options{
	"counter": Counter,
	"todo":    Todo,
}

// Names returns the available app names, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options returns the options for the named app.
func Options(name string) (vmini.Options, error) {
	f, ok := factories[name]
	if !ok {
		return vmini.Options{}, fmt.Errorf("demo: unknown app %q (available: %v)", name, Names())
	}
	return f(), nil
}

// toInt converts numeric data values, including those decoded from files.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
