package level

import "math"

// Snapshot contains the simulation state of a level for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Level  string
	Tick   uint64
	State  string
	Kills  int
	Health int

	// Each entity is 6 values: ID, Kind, X, Y, Health, Destroyed
	EntityCount int
	EntityData  []float64
}

// Snapshot returns the current state of the level.
func (l *Level) Snapshot() (Snapshot, error) {
	if l.state == StateUninitialized {
		return Snapshot{}, ErrNotInitialized
	}

	es := l.Entities()
	data := make([]float64, 0, len(es)*6)
	for _, e := range es {
		pos := e.Position()
		destroyed := 0.0
		if e.IsDestroyed() {
			destroyed = 1
		}
		data = append(data, float64(e.ID), float64(e.Kind), pos.X, pos.Y, float64(e.Health), destroyed)
	}

	st := l.Status()
	return Snapshot{
		Level:       st.Level,
		Tick:        st.Tick,
		State:       l.state.String(),
		Kills:       st.Kills,
		Health:      st.Health,
		EntityCount: len(es),
		EntityData:  data,
	}, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Level + "/" + snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Kills)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount)
	for _, v := range snap.EntityData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
