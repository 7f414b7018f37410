// Package levels registers the campaign levels with the registry.
// Import it for its side effects.
package levels

import (
	"github.com/vovakirdan/skyfighter/internal/level"
	"github.com/vovakirdan/skyfighter/internal/registry"
)

// Campaign level ids.
const (
	LevelOne   = "level-one"
	LevelTwo   = "level-two"
	LevelThree = "level-three"
)

func init() {
	registry.Register(registry.LevelInfo{ID: LevelOne, Title: "Coastline", Order: 1}, build(LevelOne))
	registry.Register(registry.LevelInfo{ID: LevelTwo, Title: "Storm Front", Order: 2}, build(LevelTwo))
	registry.Register(registry.LevelInfo{ID: LevelThree, Title: "The Guardian", Order: 3}, build(LevelThree))
}

// build returns a constructor for the level tuned under id. The runtime
// viewport, when set, overrides the tuned one.
func build(id string) registry.Factory {
	return func(ctx registry.BuildContext) (*level.Level, error) {
		cfg := ctx.Config
		if ctx.Runtime.ViewportW > 0 && ctx.Runtime.ViewportH > 0 {
			cfg.Viewport.Width = ctx.Runtime.ViewportW
			cfg.Viewport.Height = ctx.Runtime.ViewportH
		}
		return level.New(level.Options{
			Config:       cfg,
			ID:           id,
			PlayerHealth: ctx.Runtime.PlayerHealth,
			Rand:         ctx.Rand,
			Presenter:    ctx.Presenter,
			Audio:        ctx.Audio,
			Logger:       ctx.Logger,
		})
	}
}
