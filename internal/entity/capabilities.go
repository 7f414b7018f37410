package entity

import (
	"github.com/vovakirdan/skyfighter/internal/behavior"
)

// capability is one row of the dispatch table.
type capability struct {
	faction Faction
	update  func(e *Entity, rng behavior.Rand)
	damage  func(e *Entity) bool
	fire    func(f *Factory, e *Entity, rng behavior.Rand) []*Entity
}

var capabilities [kindCount]capability

func init() {
	capabilities = [kindCount]capability{
		KindPlayer: {
			faction: FactionPlayer,
			update:  updatePlayer,
			damage:  damagePlane,
			fire:    fireAlways,
		},
		KindBasicEnemy: {
			faction: FactionEnemy,
			update:  updateLinear,
			damage:  damagePlane,
			fire:    fireAtRate,
		},
		KindBoss: {
			faction: FactionEnemy,
			update:  updateBoss,
			damage:  damagePlane,
			fire:    fireAtRate,
		},
		KindBossPhase2: {
			faction: FactionEnemy,
			update:  updateBoss,
			damage:  damagePlane,
			fire:    fireAtRate,
		},
		KindPlayerProjectile: {
			faction: FactionPlayerProjectile,
			update:  updateLinear,
			damage:  damageOneHit,
		},
		KindEnemyProjectile: {
			faction: FactionEnemyProjectile,
			update:  updateLinear,
			damage:  damageOneHit,
		},
		KindPickup: {
			faction: FactionPickup,
			update:  updatePickup,
			damage:  damageOneHit,
		},
	}
}

// damagePlane decrements health by exactly one unless a shield is up.
func damagePlane(e *Entity) bool {
	if e.Shielded() {
		return false
	}
	e.Health--
	if e.Health <= 0 {
		return e.Destroy(CauseDamage)
	}
	return false
}

// damageOneHit destroys the entity on any hit.
func damageOneHit(e *Entity) bool {
	return e.Destroy(CauseDamage)
}

func updateLinear(e *Entity, _ behavior.Rand) {
	e.Offset = e.Offset.Add(e.Velocity)
}

// updatePlayer moves on each axis independently and rolls back the step
// of any axis that would leave the flight band.
func updatePlayer(e *Entity, _ behavior.Rand) {
	p := e.pilot

	prevY := e.Offset.Y
	e.Offset.Y += e.Velocity.Y
	if y := e.Position().Y; y < p.minY || y > p.maxY {
		e.Offset.Y = prevY
	}

	prevX := e.Offset.X
	e.Offset.X += e.Velocity.X
	if x := e.Position().X; x < p.minX || x > p.maxX {
		e.Offset.X = prevX
	}
}

// updateBoss takes the next pattern step, discarding it if it would leave
// the vertical band, then advances the shield timer.
func updateBoss(e *Entity, rng behavior.Rand) {
	b := e.brain

	prevY := e.Offset.Y
	e.Offset.Y += b.Moves.Next(rng)
	if y := e.Position().Y; y < b.minY || y > b.maxY {
		e.Offset.Y = prevY
	}

	b.Shield.Update(rng)
}

func updatePickup(e *Entity, _ behavior.Rand) {
	if e.drift.step(e) {
		e.Destroy(CauseExpired)
	}
}

// fireAlways releases the full volley without a trial. Used for the
// player, whose firing is driven by intents.
func fireAlways(f *Factory, e *Entity, _ behavior.Rand) []*Entity {
	return f.release(e, e.gun.volley)
}

// fireAtRate draws one trial per tick at the gun's rate.
func fireAtRate(f *Factory, e *Entity, rng behavior.Rand) []*Entity {
	return f.release(e, e.gun.volley.Trigger(rng, e.gun.rate))
}
