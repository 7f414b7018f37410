// Package spawn decides, once per tick, which new entities enter a level.
//
// Enemy waves are a fixed number of independent trials, so the number of
// spawns per tick is binomial and only bounded above by the cap. Pickups
// use their own single trial. Boss levels replace waves with a phase
// sequence.
package spawn

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfighter/internal/behavior"
	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/entity"
)

// Controller spawns enemies and pickups for one level.
type Controller struct {
	factory *entity.Factory
	logger  *log.Logger

	cap          int
	probability  float64
	pickupChance float64
	edgeX        float64 // Right screen edge
	maxY         float64 // Lowest spawn position

	phases *Phases // nil on wave levels
}

// New creates the controller for a level. Boss profiles are checked here
// so spawning never fails mid-tick.
func New(f *entity.Factory, cfg config.Config, lvl config.LevelConfig, logger *log.Logger) (*Controller, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		factory:      f,
		logger:       logger,
		cap:          lvl.EnemyCap,
		probability:  lvl.SpawnProbability,
		pickupChance: cfg.Pickup.Chance,
		edgeX:        cfg.Viewport.Width,
		maxY:         cfg.EnemyMaxY(),
	}
	if len(lvl.BossPhases) > 0 {
		for _, profile := range lvl.BossPhases {
			if _, ok := cfg.Bosses[profile]; !ok {
				return nil, fmt.Errorf("spawn: level %q: %w %q", lvl.ID, entity.ErrUnknownBoss, profile)
			}
		}
		c.phases = NewPhases(lvl.BossPhases)
	}
	return c, nil
}

// Phases returns the boss phase sequence, or nil on wave levels.
func (c *Controller) Phases() *Phases {
	return c.phases
}

// Enemies returns the enemies entering this tick given the current enemy
// count. On wave levels it runs cap-count trials at the spawn probability.
// On boss levels it introduces the next phase when the field is clear.
func (c *Controller) Enemies(rng behavior.Rand, count int) []*entity.Entity {
	if c.phases != nil {
		boss, err := c.phases.Next(c.factory, rng, count)
		if err != nil {
			c.logger.Error("cannot spawn boss", "err", err)
			return nil
		}
		if boss == nil {
			return nil
		}
		c.logger.Info("boss phase introduced", "title", boss.Brain().Title, "phase", boss.Brain().Phase, "health", boss.Health)
		return []*entity.Entity{boss}
	}

	var out []*entity.Entity
	for deficit := c.cap - count; deficit > 0; deficit-- {
		if !behavior.Bernoulli(rng, c.probability) {
			continue
		}
		y := rng.Float64() * c.maxY
		e := c.factory.Enemy(c.edgeX, y)
		c.logger.Debug("enemy spawned", "id", e.ID, "y", y)
		out = append(out, e)
	}
	return out
}

// Pickup runs the independent pickup trial. It returns nil or one heart.
func (c *Controller) Pickup(rng behavior.Rand) *entity.Entity {
	if !behavior.Bernoulli(rng, c.pickupChance) {
		return nil
	}
	y := rng.Float64() * c.maxY
	e := c.factory.Pickup(c.edgeX, y)
	c.logger.Debug("pickup spawned", "id", e.ID, "y", y)
	return e
}
