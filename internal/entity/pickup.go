package entity

import (
	"github.com/tanema/gween"
)

// drift scripts a pickup: a linear tween carries it across the viewport
// while it bobs up and down every few ticks.
type drift struct {
	tween  *gween.Tween
	dt     float32 // Seconds per tick
	amount float64
	every  int
	ticks  int
	raised bool
	heal   int
}

// step advances the script by one tick and reports whether the tween
// has finished.
func (d *drift) step(e *Entity) bool {
	x, done := d.tween.Update(d.dt)
	e.Offset.X = float64(x)

	d.ticks++
	if d.every > 0 && d.ticks%d.every == 0 {
		if d.raised {
			e.Offset.Y -= d.amount
		} else {
			e.Offset.Y += d.amount
		}
		d.raised = !d.raised
	}
	return done
}

// HealAmount returns the health a pickup restores, or 0 for other kinds.
func (e *Entity) HealAmount() int {
	if e.drift == nil {
		return 0
	}
	return e.drift.heal
}
