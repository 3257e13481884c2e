// Package registry provides a global registry for presentation backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/session"
	"github.com/vovakirdan/dino-runner/internal/sound"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// Backend presents the game on some surface (terminal, window) and owns
// input sampling and pacing for it.
type Backend interface {
	// Name returns the identifier used by --backend (e.g., "tui").
	Name() string

	// Description returns a one-line summary for `dino backends`.
	Description() string

	// Run plays until the user quits or ctx is cancelled.
	Run(ctx context.Context, env Env) error
}

// Env is everything a backend needs from the CLI.
type Env struct {
	Config   config.DinoConfig
	Runtime  core.RuntimeConfig // Terminal size, tick rate and seed
	Assets   string             // Asset directory; empty means built-in art
	Sound    bool               // Play sound cues
	ShowRuns bool               // Show the run table after quitting
	Journal  *storage.Store     // May be nil
	Logger   *log.Logger
}

// Log returns the environment logger, or a discarding one.
func (e Env) Log() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// SessionOptions builds the session options shared by every backend.
func (e Env) SessionOptions(backend string, player sound.Player) session.Options {
	opts := session.Options{
		Backend: backend,
		Seed:    e.Runtime.Seed,
		Player:  player,
		Logger:  e.Log(),
	}
	if e.Journal != nil {
		opts.Journal = e.Journal
	}
	return opts
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new backend by its name.
// Returns an error if the name is not registered.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
