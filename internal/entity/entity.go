// Package entity implements the simulation's entity record.
//
// Every live object (player, enemies, bosses, projectiles, pickups) is an
// *Entity tagged with a Kind. Per-kind behavior (update, damage intake,
// firing) is dispatched through a fixed capability table, so adding a
// variant means adding a table row rather than a type.
package entity

import (
	"github.com/vovakirdan/skyfighter/internal/behavior"
	"github.com/vovakirdan/skyfighter/internal/core"
)

// Hitbox is a collision rectangle relative to the entity position.
type Hitbox struct {
	X, Y float64 // Offset from the position
	W, H float64
}

// Entity is the data record shared by all variants.
//
// Invariant: Health <= 0 if and only if the entity is destroyed. Every
// path that destroys an entity zeroes its health, and every path that
// drops health to zero destroys it.
type Entity struct {
	ID       uint64
	Kind     Kind
	Origin   core.Vec // Spawn position
	Offset   core.Vec // Translation accumulated since spawn
	Velocity core.Vec // Per-tick displacement
	Hitbox   *Hitbox  // nil means the entity cannot collide

	Health    int
	MaxHealth int

	destroyed bool
	cause     Cause
	onDestroy func(*Entity, Cause)

	pilot *pilot // player only
	gun   *gun   // anything that fires
	brain *Brain // bosses only
	drift *drift // pickups only
}

// Faction returns the collision faction of the entity's kind.
func (e *Entity) Faction() Faction {
	return capabilities[e.Kind].faction
}

// Position returns the world position (origin plus translation).
func (e *Entity) Position() core.Vec {
	return e.Origin.Add(e.Offset)
}

// Bounds returns the world-space hitbox. ok is false when the entity has
// no hitbox.
func (e *Entity) Bounds() (box core.Box, ok bool) {
	if e.Hitbox == nil {
		return core.Box{}, false
	}
	p := e.Position()
	return core.Box{X: p.X + e.Hitbox.X, Y: p.Y + e.Hitbox.Y, W: e.Hitbox.W, H: e.Hitbox.H}, true
}

// IsDestroyed reports whether the entity has been destroyed.
func (e *Entity) IsDestroyed() bool {
	return e.destroyed
}

// DestroyCause returns why the entity was destroyed, or CauseNone.
func (e *Entity) DestroyCause() Cause {
	return e.cause
}

// Destroy marks the entity destroyed and runs the destruction hook.
// It returns true only on the call that actually destroyed the entity;
// the hook therefore runs exactly once.
func (e *Entity) Destroy(cause Cause) bool {
	if e.destroyed {
		return false
	}
	e.destroyed = true
	e.cause = cause
	if e.Health > 0 {
		e.Health = 0
	}
	if e.onDestroy != nil {
		e.onDestroy(e, cause)
	}
	return true
}

// TakeDamage applies one hit. Projectiles and pickups die on any hit;
// planes lose one health unless shielded. It returns true if this hit
// destroyed the entity.
func (e *Entity) TakeDamage() bool {
	if e.destroyed {
		return false
	}
	return capabilities[e.Kind].damage(e)
}

// Update advances the entity by one tick.
func (e *Entity) Update(rng behavior.Rand) {
	if e.destroyed {
		return
	}
	if update := capabilities[e.Kind].update; update != nil {
		update(e, rng)
	}
}

// Heal restores n health up to limit. Destroyed entities stay destroyed.
func (e *Entity) Heal(n, limit int) {
	if e.destroyed || n <= 0 {
		return
	}
	e.Health += n
	if e.Health > limit {
		e.Health = limit
	}
}

// Shielded reports whether damage is currently ignored.
func (e *Entity) Shielded() bool {
	return e.brain != nil && e.brain.Shield.Active()
}

// HealthPercent returns current over max health in [0, 1].
// It is the view model of the boss health bar.
func (e *Entity) HealthPercent() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(e.Health)/float64(e.MaxHealth), 0, 1)
}

// Brain returns the boss behavior state, or nil for other kinds.
func (e *Entity) Brain() *Brain {
	return e.brain
}

// Steer applies a movement intent to the player. Other kinds ignore it.
func (e *Entity) Steer(a core.Action) {
	if e.pilot == nil || e.destroyed {
		return
	}
	s := e.pilot.speed
	switch a {
	case core.ActionMoveUp:
		e.Velocity.Y = -s
	case core.ActionMoveDown:
		e.Velocity.Y = s
	case core.ActionStopVertical:
		e.Velocity.Y = 0
	case core.ActionMoveLeft:
		e.Velocity.X = -s
	case core.ActionMoveRight:
		e.Velocity.X = s
	case core.ActionStopHorizontal:
		e.Velocity.X = 0
	}
}

// Displacement returns the absolute horizontal translation since spawn.
// Penetration checks compare it against a boundary.
func (e *Entity) Displacement() float64 {
	if e.Offset.X < 0 {
		return -e.Offset.X
	}
	return e.Offset.X
}
