// Package registry maps level ids to level constructors.
// Levels register themselves in init() functions, so the host can build
// any level from its id without knowing the concrete constructors.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfighter/internal/behavior"
	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/level"
)

// ErrUnknownLevel is returned by Create for ids that were never registered.
var ErrUnknownLevel = errors.New("registry: unknown level")

// BuildContext carries everything a constructor needs.
type BuildContext struct {
	Config    config.Config
	Runtime   core.RuntimeConfig // Viewport size and initial player health
	Rand      behavior.Rand
	Presenter level.Presenter
	Audio     level.Audio
	Logger    *log.Logger
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID    string
	Title string
	Order int // Position in the campaign
}

// Factory builds a runnable level.
type Factory func(ctx BuildContext) (*level.Level, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]LevelInfo)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from an init() function.
// Panics if a level with the same ID is already registered.
func Register(info LevelInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered levels in campaign order.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new level by its ID.
// Returns an error wrapping ErrUnknownLevel if the ID is not registered.
func Create(id string, ctx BuildContext) (*level.Level, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, id)
	}

	l, err := f(ctx)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot build level %q: %w", id, err)
	}
	return l, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
