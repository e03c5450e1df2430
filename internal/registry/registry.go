// Package registry is the catalogue of playable games.
// Game packages register a factory from init(); the platform looks games
// up by ID without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/minigames/internal/core"
)

// Game is the contract between a game and the platform.
// Games hold pure logic; the platform owns input mapping, timing and output.
type Game interface {
	// ID returns a unique identifier (e.g. "snake"), used on the command line.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset initializes or restarts the game for the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one platform frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and status.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description.
type Describer interface {
	Blurb() string
}

// Resizer is implemented by games that adapt to a new terminal size
// without restarting. Games without it only see the size passed to Reset.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Blurb string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. It panics on a duplicate ID, which can only
// happen through a programming error in an init() function.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Blurb = d.Blurb()
	}
	infos[id] = info
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}
