// Package config provides YAML-based tuning for the simulation: entity
// stats, boss profiles, pickup behavior, boundaries and the level campaign.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all tuning for a session.
type Config struct {
	Viewport    Viewport              `yaml:"viewport"`
	TickMS      int                   `yaml:"tick_ms"`
	Player      PlayerConfig          `yaml:"player"`
	Enemy       EnemyConfig           `yaml:"enemy"`
	Projectiles ProjectilesConfig     `yaml:"projectiles"`
	Bosses      map[string]BossConfig `yaml:"bosses"`
	Pickup      PickupConfig          `yaml:"pickup"`
	Boundaries  BoundariesConfig      `yaml:"boundaries"`
	Levels      []LevelConfig         `yaml:"levels"`
	Audio       AudioConfig           `yaml:"audio"`
}

// Viewport is the logical play area in world units.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point is an offset in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// HitboxConfig places a hitbox relative to the entity position.
// Hitboxes are independent of sprite bounds.
type HitboxConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Start     Point        `yaml:"start"`
	Health    int          `yaml:"health"`
	MaxHealth int          `yaml:"max_health"` // Cap for pickup healing
	Speed     float64      `yaml:"speed"`      // Units per tick on both axes
	MinX      float64      `yaml:"min_x"`
	MaxX      float64      `yaml:"max_x"`
	MinY      float64      `yaml:"min_y"`
	MaxY      float64      `yaml:"max_y"`
	Hitbox    HitboxConfig `yaml:"hitbox"`
	Muzzle    Point        `yaml:"muzzle"` // Projectile spawn offset
}

// EnemyConfig defines the basic enemy craft.
type EnemyConfig struct {
	Health   int          `yaml:"health"`
	SpeedX   float64      `yaml:"speed_x"`
	FireRate float64      `yaml:"fire_rate"` // Per-tick fire probability
	Hitbox   HitboxConfig `yaml:"hitbox"`
	Muzzle   Point        `yaml:"muzzle"`
}

// ProjectilesConfig groups the three projectile variants.
type ProjectilesConfig struct {
	Player ProjectileConfig `yaml:"player"`
	Enemy  ProjectileConfig `yaml:"enemy"`
	Boss   ProjectileConfig `yaml:"boss"`
}

// ProjectileConfig defines a projectile variant.
type ProjectileConfig struct {
	Velocity Point        `yaml:"velocity"`
	Hitbox   HitboxConfig `yaml:"hitbox"`
}

// ShotConfig is one projectile of a boss volley.
type ShotConfig struct {
	OffsetY  float64 `yaml:"offset_y"`
	Velocity Point   `yaml:"velocity"`
}

// BossConfig defines one boss phase.
type BossConfig struct {
	Title         string       `yaml:"title"`
	Start         Point        `yaml:"start"`
	Health        int          `yaml:"health"`
	FireRate      float64      `yaml:"fire_rate"`
	ShieldChance  float64      `yaml:"shield_chance"` // Per-tick activation probability
	ShieldTicks   int          `yaml:"shield_ticks"`
	MoveRepeat    int          `yaml:"move_repeat"` // Copies of each step value in the pattern
	MoveSpeed     float64      `yaml:"move_speed"`
	MoveRunLength int          `yaml:"move_run_length"`
	MoveReshuffle bool         `yaml:"move_reshuffle"`
	MinY          float64      `yaml:"min_y"`
	MaxY          float64      `yaml:"max_y"`
	Hitbox        HitboxConfig `yaml:"hitbox"`
	Muzzle        Point        `yaml:"muzzle"`
	Volley        []ShotConfig `yaml:"volley"`
}

// PickupConfig defines the heart pickup.
type PickupConfig struct {
	Chance        float64      `yaml:"chance"`         // Per-tick spawn probability
	Heal          int          `yaml:"heal"`           // Health restored on contact
	TravelSeconds float64      `yaml:"travel_seconds"` // Time to cross the viewport
	WobbleAmount  float64      `yaml:"wobble_amount"`  // Vertical oscillation in units
	WobbleTicks   int          `yaml:"wobble_ticks"`   // Ticks between oscillation steps
	Hitbox        HitboxConfig `yaml:"hitbox"`
}

// BoundariesConfig defines penetration and culling thresholds.
type BoundariesConfig struct {
	// EnemyPenetration is the horizontal displacement past which an enemy
	// has got through. Zero means the viewport width.
	EnemyPenetration float64 `yaml:"enemy_penetration"`
	// ProjectilePenetration is the displacement past which any projectile
	// is discarded.
	ProjectilePenetration float64 `yaml:"projectile_penetration"`
	// SpawnMarginBottom keeps spawned enemies this far above the bottom edge.
	SpawnMarginBottom float64 `yaml:"spawn_margin_bottom"`
}

// LevelConfig defines one level of the campaign.
type LevelConfig struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	EnemyCap         int      `yaml:"enemy_cap"`
	SpawnProbability float64  `yaml:"spawn_probability"`
	KillThreshold    int      `yaml:"kill_threshold"` // Advance when reached, 0 for boss levels
	Next             string   `yaml:"next"`
	BossPhases       []string `yaml:"boss_phases"` // Keys into Bosses, in order
}

// AudioConfig defines cue volumes.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	EffectVolume float64 `yaml:"effect_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
}

// EnemyMaxY returns the lowest spawn position for enemies.
func (c Config) EnemyMaxY() float64 {
	return c.Viewport.Height - c.Boundaries.SpawnMarginBottom
}

// EnemyPenetration returns the enemy penetration threshold.
func (c Config) EnemyPenetration() float64 {
	if c.Boundaries.EnemyPenetration > 0 {
		return c.Boundaries.EnemyPenetration
	}
	return c.Viewport.Width
}

// Level returns the level with the given id.
func (c Config) Level(id string) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// FirstLevel returns the id of the first level of the campaign.
func (c Config) FirstLevel() string {
	if len(c.Levels) == 0 {
		return ""
	}
	return c.Levels[0].ID
}

// Validate checks the config for values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.TickMS)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("%w: player health must be positive", ErrInvalid)
	}
	if c.Player.MaxHealth < c.Player.Health {
		return fmt.Errorf("%w: player max_health %d below health %d", ErrInvalid, c.Player.MaxHealth, c.Player.Health)
	}
	if err := checkProbability("enemy.fire_rate", c.Enemy.FireRate); err != nil {
		return err
	}
	if err := checkProbability("pickup.chance", c.Pickup.Chance); err != nil {
		return err
	}
	if c.Pickup.TravelSeconds <= 0 {
		return fmt.Errorf("%w: pickup.travel_seconds must be positive", ErrInvalid)
	}
	for name, b := range c.Bosses {
		if b.Health <= 0 {
			return fmt.Errorf("%w: boss %q health must be positive", ErrInvalid, name)
		}
		if b.MoveRepeat <= 0 || b.MoveRunLength <= 0 {
			return fmt.Errorf("%w: boss %q move pattern needs positive repeat and run length", ErrInvalid, name)
		}
		if err := checkProbability("bosses."+name+".fire_rate", b.FireRate); err != nil {
			return err
		}
		if err := checkProbability("bosses."+name+".shield_chance", b.ShieldChance); err != nil {
			return err
		}
		if len(b.Volley) == 0 {
			return fmt.Errorf("%w: boss %q has an empty volley", ErrInvalid, name)
		}
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels defined", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Levels))
	for _, l := range c.Levels {
		if l.ID == "" {
			return fmt.Errorf("%w: level without id", ErrInvalid)
		}
		if seen[l.ID] {
			return fmt.Errorf("%w: duplicate level %q", ErrInvalid, l.ID)
		}
		seen[l.ID] = true
		if err := checkProbability("levels."+l.ID+".spawn_probability", l.SpawnProbability); err != nil {
			return err
		}
		if l.EnemyCap < 0 {
			return fmt.Errorf("%w: level %q enemy_cap is negative", ErrInvalid, l.ID)
		}
		if len(l.BossPhases) == 0 && l.KillThreshold <= 0 {
			return fmt.Errorf("%w: level %q has no win condition", ErrInvalid, l.ID)
		}
		for _, phase := range l.BossPhases {
			if _, ok := c.Bosses[phase]; !ok {
				return fmt.Errorf("%w: level %q references unknown boss %q", ErrInvalid, l.ID, phase)
			}
		}
	}
	for _, l := range c.Levels {
		if l.Next != "" && !seen[l.Next] {
			return fmt.Errorf("%w: level %q advances to unknown level %q", ErrInvalid, l.ID, l.Next)
		}
	}
	return nil
}

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: %s must be in [0,1], got %v", ErrInvalid, name, p)
	}
	return nil
}
