// Package registry provides a global registry for display backends.
// Backends register themselves in init() functions, allowing the CLI to
// pick a front end by name without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-racer/internal/scenario"
)

// RunOptions is everything a backend needs to show scenarios.
type RunOptions struct {
	// Scenarios available in the picker.
	Scenarios []scenario.Scenario

	// Start is the scenario shown first. Empty opens the picker.
	Start string

	// TickInterval is the time between frames.
	TickInterval time.Duration

	// ScreenshotDir receives text screenshots. Empty disables them.
	ScreenshotDir string

	Logger *log.Logger
}

// Backend is a display front end.
type Backend struct {
	Name  string
	Title string
	Run   func(ctx context.Context, opts RunOptions) error
}

var (
	backends = make(map[string]Backend)
	mu       sync.RWMutex
)

// Register adds a backend to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()

	if b.Name == "" || b.Run == nil {
		panic("registry: backend needs a name and a Run function")
	}
	if _, exists := backends[b.Name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", b.Name))
	}

	backends[b.Name] = b
}

// List returns all registered backends, sorted by name.
func List() []Backend {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Backend, 0, len(backends))
	for _, b := range backends {
		result = append(result, b)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the backend registered under name. The error for an unknown
// name lists the registered ones.
func Get(name string) (Backend, error) {
	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()

	if !ok {
		names := make([]string, 0)
		for _, b := range List() {
			names = append(names, b.Name)
		}
		return Backend{}, fmt.Errorf("registry: unknown backend %q (available: %s)", name, strings.Join(names, ", "))
	}

	return b, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}

// unregister removes a backend. Tests only.
func unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(backends, name)
}
