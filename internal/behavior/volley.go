package behavior

import "github.com/vovakirdan/skyfighter/internal/core"

// Shot describes one projectile of a volley relative to the muzzle.
type Shot struct {
	OffsetY  float64
	Velocity core.Vec
}

// Volley is the set of projectiles released together when firing.
type Volley []Shot

// Trigger draws this tick's fire decision at the given rate.
// It returns the volley to release, or nil.
func (v Volley) Trigger(rng Rand, rate float64) Volley {
	if len(v) == 0 || !Bernoulli(rng, rate) {
		return nil
	}
	return v
}
