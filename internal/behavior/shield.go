package behavior

// ShieldState is the state of a ShieldTimer.
type ShieldState int

const (
	ShieldNormal ShieldState = iota
	ShieldActive
)

// String returns a human-readable name for the state.
func (s ShieldState) String() string {
	switch s {
	case ShieldNormal:
		return "NORMAL"
	case ShieldActive:
		return "SHIELDED"
	default:
		return "Unknown"
	}
}

// ShieldTimer is a two-state machine counted in ticks, not wall time.
// NORMAL -> SHIELDED on a per-tick Bernoulli trial; SHIELDED -> NORMAL
// once the shield has been up for duration ticks.
type ShieldTimer struct {
	chance   float64
	duration int
	state    ShieldState
	ticks    int
}

// NewShieldTimer creates a timer. A zero duration or chance disables it.
func NewShieldTimer(chance float64, duration int) *ShieldTimer {
	return &ShieldTimer{chance: chance, duration: duration}
}

// Update advances the timer by one tick.
// The activation trial is only drawn while the shield is down.
func (s *ShieldTimer) Update(rng Rand) {
	if s.state == ShieldActive {
		s.ticks++
		if s.ticks >= s.duration {
			s.state = ShieldNormal
			s.ticks = 0
		}
		return
	}
	if s.duration > 0 && Bernoulli(rng, s.chance) {
		s.state = ShieldActive
		s.ticks = 0
	}
}

// Activate raises the shield immediately.
func (s *ShieldTimer) Activate() {
	if s.duration <= 0 {
		return
	}
	s.state = ShieldActive
	s.ticks = 0
}

// Active reports whether the shield is up.
func (s *ShieldTimer) Active() bool {
	return s.state == ShieldActive
}

// State returns the current state.
func (s *ShieldTimer) State() ShieldState {
	return s.state
}

// Elapsed returns how many ticks the shield has been up.
func (s *ShieldTimer) Elapsed() int {
	return s.ticks
}
