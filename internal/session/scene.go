package session

import (
	"sort"

	"github.com/vovakirdan/skyfighter/internal/entity"
)

// Scene is the presentation port of the host: it records which entities
// are live so they can be drawn. It is only used from the host goroutine.
type Scene struct {
	live map[uint64]*entity.Entity
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{live: make(map[uint64]*entity.Entity)}
}

// Attach adds an entity.
func (s *Scene) Attach(e *entity.Entity) {
	s.live[e.ID] = e
}

// Detach removes an entity.
func (s *Scene) Detach(e *entity.Entity) {
	delete(s.live, e.ID)
}

// AttachAll adds every entity of es.
func (s *Scene) AttachAll(es []*entity.Entity) {
	for _, e := range es {
		s.Attach(e)
	}
}

// DetachAll removes every entity of es.
func (s *Scene) DetachAll(es []*entity.Entity) {
	for _, e := range es {
		s.Detach(e)
	}
}

// Len returns the number of attached entities.
func (s *Scene) Len() int {
	return len(s.live)
}

// Live returns the attached entities ordered by id, which is also their
// creation order.
func (s *Scene) Live() []*entity.Entity {
	out := make([]*entity.Entity, 0, len(s.live))
	for _, e := range s.live {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
