// Package collision resolves hits between two entity sets.
//
// Resolution is brute force: every pair is tested every call and nothing
// is cached between calls. Entity counts are bounded by the spawn caps,
// so a broadphase would cost more than it saves.
package collision

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/entity"
)

// Contact is one intersecting pair found by Resolve.
type Contact struct {
	A *entity.Entity // From the first set
	B *entity.Entity // From the second set
}

var discard = log.New(io.Discard)

// Resolve tests every pair (a, b) with a from as and b from bs and applies
// one hit to both sides of each intersecting pair. Entities without a
// hitbox cannot collide; they are logged at debug level and skipped.
//
// Damage is applied regardless of which set is the attacker, and a pair
// found by two separate calls is damaged twice.
func Resolve(as, bs []*entity.Entity, logger *log.Logger) []Contact {
	if logger == nil {
		logger = discard
	}
	boxesA := bounds(as, logger)
	boxesB := bounds(bs, logger)

	var contacts []Contact
	for j, b := range bs {
		if !boxesB[j].ok {
			continue
		}
		for i, a := range as {
			if !boxesA[i].ok || !boxesA[i].box.Intersects(boxesB[j].box) {
				continue
			}
			a.TakeDamage()
			b.TakeDamage()
			contacts = append(contacts, Contact{A: a, B: b})
		}
	}
	return contacts
}

type slot struct {
	box core.Box
	ok  bool
}

// bounds snapshots world hitboxes before any damage is applied, so the
// result does not depend on iteration order.
func bounds(es []*entity.Entity, logger *log.Logger) []slot {
	out := make([]slot, len(es))
	for i, e := range es {
		if e == nil {
			continue
		}
		box, ok := e.Bounds()
		if !ok {
			logger.Debug("entity has no hitbox", "id", e.ID, "kind", e.Kind)
			continue
		}
		out[i] = slot{box: box, ok: true}
	}
	return out
}

// Overlapping returns the entities of es whose hitbox intersects target,
// without applying damage. Used for pickup contact.
func Overlapping(target *entity.Entity, es []*entity.Entity) []*entity.Entity {
	tb, ok := target.Bounds()
	if !ok {
		return nil
	}
	var out []*entity.Entity
	for _, e := range es {
		if e == nil || e.IsDestroyed() {
			continue
		}
		if box, ok := e.Bounds(); ok && box.Intersects(tb) {
			out = append(out, e)
		}
	}
	return out
}
