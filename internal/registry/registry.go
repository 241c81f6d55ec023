// Package registry provides a global registry for host factories.
// Hosts register themselves in init() functions, so the CLI can list and
// start whichever ones were compiled in without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chad-snake/internal/core"
	"github.com/vovakirdan/chad-snake/internal/engine"
)

// Host runs a game loop on some display.
type Host interface {
	// ID returns a unique identifier used by --host (e.g., "tui", "gl").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Run blocks until the player quits or ctx is cancelled.
	Run(ctx context.Context, loop *engine.Loop, cfg core.RuntimeConfig, logger *log.Logger) error
}

// HostInfo contains metadata about a registered host.
type HostInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a host.
type Factory func() Host

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a host factory to the registry.
// Panics if a host with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: host %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered hosts, sorted by ID.
func List() []HostInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]HostInfo, 0, len(factories))
	for id := range factories {
		result = append(result, HostInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a host by its ID.
func Create(id string) (Host, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown host %q", id)
	}

	return f(), nil
}

// Exists checks if a host with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
