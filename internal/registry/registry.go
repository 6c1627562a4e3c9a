// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// Game is the interface hosts drive. A game owns all of its state and is
// clocked from outside: hosts call HandleKey and Tick serially, never concurrently.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "barrage").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// HandleKey applies one decoded key event before the next tick.
	HandleKey(ev core.KeyEvent)

	// Tick advances the simulation by one step and redraws the surface
	// the game was created with.
	Tick()

	// Reset returns the game to its post-construction state.
	Reset()

	// State returns the current score and game-over flag.
	State() core.GameState
}

// Sizer is implemented by games whose board has a fixed size.
type Sizer interface {
	Size() (width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Options carries host-level choices into a factory.
type Options struct {
	ConfigPath string // Custom YAML config, empty for the search path
	Difficulty string // easy, normal, hard, fixed or empty
}

// Factory creates a new game instance drawing into dst.
type Factory func(dst core.Surface, opts Options) (Game, error)

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the factory fails.
func Create(id string, dst core.Surface, opts Options) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := e.factory(dst, opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// CreateWithScreen creates a game together with the screen buffer it draws
// into. The screen starts at the default runtime size and is resized to the
// game's board when the game reports one.
func CreateWithScreen(id string, opts Options) (Game, *core.Screen, error) {
	def := core.DefaultConfig()
	screen := core.NewScreen(def.ScreenW, def.ScreenH)

	g, err := Create(id, screen, opts)
	if err != nil {
		return nil, nil, err
	}
	if s, ok := g.(Sizer); ok {
		screen.Resize(s.Size())
	}
	return g, screen, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
