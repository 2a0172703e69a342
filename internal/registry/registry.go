// Package registry holds the static task plugin table.
//
// Task plugins register a factory under a module/class pair at init time.
// Configuration then names plugins as "module.Class" strings which are
// resolved against this table, replacing the runtime import lookup a
// dynamic language would use.
package registry

import (
	"sort"
	"sync"

	"github.com/spf13/pflag"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskConfig is the shared configuration every task is constructed with.
type TaskConfig struct {
	// OutputDir is where tasks place their artifacts.
	OutputDir string
	// Options carries free-form settings (config file options merged with
	// task-contributed CLI flag values).
	Options map[string]string
	// Logger is the harness logger.
	Logger ports.Logger
}

// Option returns the named option, or def when it is unset.
func (c TaskConfig) Option(name, def string) string {
	if v, ok := c.Options[name]; ok {
		return v
	}
	return def
}

// Factory constructs one task instance for a single test run.
type Factory func(cfg TaskConfig) (ports.Task, error)

// Registration describes a registered task class.
type Registration struct {
	// New constructs the task.
	New Factory
	// Flags, when set, contributes the class's CLI flags. It is called on
	// every registered class, configured or not, so flags parse uniformly.
	Flags func(fs *pflag.FlagSet)
}

// Entry is a resolved registration together with its descriptor.
type Entry struct {
	Descriptor domain.TaskDescriptor
	Registration
}

var (
	mu      sync.RWMutex
	modules = map[string]map[string]Registration{}
)

// Register adds a task class to the table. It panics on a duplicate or a
// nil factory since both are programmer errors at init time.
func Register(module, class string, r Registration) {
	if r.New == nil {
		panic("registry: nil factory for " + module + "." + class)
	}
	mu.Lock()
	defer mu.Unlock()

	classes, ok := modules[module]
	if !ok {
		classes = map[string]Registration{}
		modules[module] = classes
	}
	if _, exists := classes[class]; exists {
		panic("registry: duplicate task " + module + "." + class)
	}
	classes[class] = r
}

// Resolve maps ordered "module.Class" descriptor strings to registry
// entries, preserving order. The first unresolvable descriptor aborts
// resolution with a configuration error naming the offending part.
func Resolve(descriptors []string) ([]Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	entries := make([]Entry, 0, len(descriptors))
	for _, s := range descriptors {
		d, err := domain.ParseDescriptor(s)
		if err != nil {
			return nil, err
		}
		classes, ok := modules[d.Module]
		if !ok {
			return nil, zerr.With(domain.ErrUnknownTaskModule, "module", d.Module)
		}
		r, ok := classes[d.Class]
		if !ok {
			err := zerr.With(domain.ErrUnknownTaskClass, "module", d.Module)
			return nil, zerr.With(err, "class", d.Class)
		}
		entries = append(entries, Entry{Descriptor: d, Registration: r})
	}
	return entries, nil
}

// Instantiate constructs one task per entry in order. Constructor errors
// are passed through wrapped; no partial list is returned.
func Instantiate(entries []Entry, cfg TaskConfig) ([]ports.Task, error) {
	tasks := make([]ports.Task, 0, len(entries))
	for _, e := range entries {
		task, err := e.New(cfg)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to construct task"), "task", e.Descriptor.String())
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// All lists every registered class, sorted by module then class.
func All() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	entries := make([]Entry, 0, len(modules))
	for module, classes := range modules {
		for class, r := range classes {
			entries = append(entries, Entry{
				Descriptor:   domain.TaskDescriptor{Module: module, Class: class},
				Registration: r,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Descriptor, entries[j].Descriptor
		if a.Module != b.Module {
			return a.Module < b.Module
		}
		return a.Class < b.Class
	})
	return entries
}
