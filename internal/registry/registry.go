// Package registry lets game modes announce themselves to the platform
// layer. Modes register from init(); front-ends list and create them by ID
// without importing the game packages directly.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is the contract between a simulation and a front-end. Games hold
// no terminal, window or audio state: the platform maps input, keeps
// time, plays cues and draws.
type Game interface {
	// ID returns a unique identifier (e.g., "runner"). Used for CLI
	// arguments and score storage.
	ID() string

	// Title returns a human-readable name (e.g., "Runner: Shooter").
	Title() string

	// Reset starts a fresh run. The RuntimeConfig carries screen size,
	// tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick and reports the state and
	// the cues emitted during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, lives, game over).
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without a Reset.
type Resizer interface {
	Resize(screenW, screenH int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

// Registry maps mode IDs to factories. The zero value is not usable; use
// New.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a mode. It panics on an empty or duplicate ID, both of
// which are programming errors in an init function.
func (r *Registry) Register(id, title string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an id and a factory")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.entries[id] = entry{info: GameInfo{ID: id, Title: title}, factory: f}
}

// List returns every registered mode sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]GameInfo, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// Create instantiates the mode registered under id.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// Default is the process-wide registry the package functions use.
var Default = New()

// Register adds a mode to Default.
func Register(id, title string, f Factory) { Default.Register(id, title, f) }

// List returns the modes in Default.
func List() []GameInfo { return Default.List() }

// Create instantiates a mode from Default.
func Create(id string) (Game, error) { return Default.Create(id) }

// Exists reports whether id is registered in Default.
func Exists(id string) bool { return Default.Exists(id) }
