package spawn

import (
	"github.com/vovakirdan/skyfighter/internal/behavior"
	"github.com/vovakirdan/skyfighter/internal/entity"
)

// Phases introduces boss phases one at a time. A phase enters only when
// no enemy is on the field and the previous phase has been destroyed, so
// destroying a phase never ends the level by itself.
type Phases struct {
	profiles []string
	next     int
	current  *entity.Entity
}

// NewPhases creates a sequence over the given boss profiles.
func NewPhases(profiles []string) *Phases {
	return &Phases{profiles: append([]string(nil), profiles...)}
}

// Next builds the next phase if it is due, or returns nil.
func (p *Phases) Next(f *entity.Factory, rng behavior.Rand, count int) (*entity.Entity, error) {
	if count > 0 || p.next >= len(p.profiles) {
		return nil, nil
	}
	if p.current != nil && !p.current.IsDestroyed() {
		return nil, nil
	}
	boss, err := f.Boss(p.profiles[p.next], p.next, rng)
	if err != nil {
		return nil, err
	}
	p.next++
	p.current = boss
	return boss, nil
}

// Current returns the most recently introduced phase, or nil.
func (p *Phases) Current() *entity.Entity {
	return p.current
}

// Final reports whether the current phase is the last one.
func (p *Phases) Final() bool {
	return p.current != nil && p.next == len(p.profiles)
}

// Defeated reports whether the final phase has been destroyed.
func (p *Phases) Defeated() bool {
	return p.Final() && p.current.IsDestroyed()
}
