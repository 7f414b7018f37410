package behavior

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

// scriptedRand returns queued Float64 values and counts shuffles.
// Shuffle reverses the slice so permutations are predictable.
type scriptedRand struct {
	floats   []float64
	shuffles int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 1
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Shuffle(n int, swap func(i, j int)) {
	r.shuffles++
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func TestMovePatternComposition(t *testing.T) {
	p := NewMovePattern(rand.New(rand.NewSource(1)), 5, 8, 10, true)

	counts := map[float64]int{}
	for _, s := range p.Steps() {
		counts[s]++
	}
	if len(p.Steps()) != 15 {
		t.Errorf("len(Steps()) = %d, expected 15", len(p.Steps()))
	}
	for _, v := range []float64{8, -8, 0} {
		if counts[v] != 5 {
			t.Errorf("count of step %v = %d, expected 5", v, counts[v])
		}
	}
}

func TestMovePatternRunLength(t *testing.T) {
	rng := &scriptedRand{}
	p := NewMovePattern(rng, 5, 8, 10, true)
	before := p.Steps()
	first := before[0]

	for tick := 1; tick <= 9; tick++ {
		if got := p.Next(rng); got != first {
			t.Fatalf("tick %d step = %v, expected %v", tick, got, first)
		}
		if p.Cursor() != 0 {
			t.Fatalf("tick %d cursor = %d, expected 0", tick, p.Cursor())
		}
		if p.Shuffles() != 1 {
			t.Fatalf("tick %d reshuffled early", tick)
		}
	}

	// The tenth tick still uses the old position, then advances and reshuffles.
	if got := p.Next(rng); got != first {
		t.Errorf("tick 10 step = %v, expected %v", got, first)
	}
	if p.Cursor() != 1 {
		t.Errorf("cursor after 10 ticks = %d, expected 1", p.Cursor())
	}
	if p.Shuffles() != 2 {
		t.Errorf("Shuffles() = %d, expected 2", p.Shuffles())
	}
	if p.Run() != 0 {
		t.Errorf("Run() = %d, expected 0 after advancing", p.Run())
	}
}

func TestMovePatternWrapsWithoutReshuffle(t *testing.T) {
	rng := &scriptedRand{}
	p := NewMovePattern(rng, 1, 8, 2, false)
	initial := p.Steps()

	for i := 0; i < 3*2; i++ {
		p.Next(rng)
	}
	if p.Cursor() != 0 {
		t.Errorf("cursor = %d, expected wrap to 0", p.Cursor())
	}
	if p.Shuffles() != 1 {
		t.Errorf("Shuffles() = %d, expected only the initial shuffle", p.Shuffles())
	}
	after := p.Steps()
	for i := range initial {
		if initial[i] != after[i] {
			t.Fatalf("pattern changed without reshuffle: %v -> %v", initial, after)
		}
	}
}

func TestShieldTimerLifecycle(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.5, 0.001}}
	s := NewShieldTimer(0.002, 3)

	s.Update(rng) // 0.5 fails
	if s.Active() {
		t.Fatal("shield should stay down after a failed trial")
	}
	s.Update(rng) // 0.001 succeeds
	if !s.Active() || s.State() != ShieldActive {
		t.Fatal("shield should activate after a successful trial")
	}

	for i := 1; i <= 2; i++ {
		s.Update(rng)
		if !s.Active() {
			t.Fatalf("shield dropped after %d ticks, expected 3", i)
		}
	}
	s.Update(rng)
	if s.Active() {
		t.Error("shield should drop after 3 ticks")
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %d, expected reset to 0", s.Elapsed())
	}
}

func TestShieldTimerDisabled(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0}}
	s := NewShieldTimer(0.5, 0)
	s.Update(rng)
	s.Activate()
	if s.Active() {
		t.Error("a zero-duration shield must never activate")
	}
}

func TestShieldHoldsForDuration(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		duration := rapid.IntRange(1, 600).Draw(t, "duration")
		s := NewShieldTimer(1, duration)
		s.Activate()

		rng := &scriptedRand{}
		for i := 1; i < duration; i++ {
			s.Update(rng)
			if !s.Active() {
				t.Fatalf("shield dropped after %d of %d ticks", i, duration)
			}
		}
		s.Update(rng)
		if s.Active() {
			t.Fatalf("shield still up after %d ticks", duration)
		}
	})
}

func TestVolleyTrigger(t *testing.T) {
	v := Volley{{OffsetY: 0}, {OffsetY: -50}, {OffsetY: 50}}

	if got := v.Trigger(&scriptedRand{floats: []float64{0.05}}, 0.1); len(got) != 3 {
		t.Errorf("Trigger below rate returned %d shots, expected 3", len(got))
	}
	if got := v.Trigger(&scriptedRand{floats: []float64{0.5}}, 0.1); got != nil {
		t.Errorf("Trigger above rate returned %v, expected nil", got)
	}
	if got := v.Trigger(&scriptedRand{floats: []float64{0}}, 0); got != nil {
		t.Error("Trigger at rate 0 must never fire")
	}
}
