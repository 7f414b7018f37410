package behavior

// MovePattern is a shuffled multiset of vertical steps walked by a cursor.
//
// The pattern holds repeat copies of each of {+speed, -speed, 0}. Next
// returns the step under the cursor; after runLength consecutive calls on
// the same position the cursor advances (wrapping) and, when reshuffle is
// set, the pattern is permuted again.
type MovePattern struct {
	steps     []float64
	cursor    int
	run       int
	runLength int
	reshuffle bool
	shuffles  int
}

// NewMovePattern builds and shuffles a pattern.
func NewMovePattern(rng Rand, repeat int, speed float64, runLength int, reshuffle bool) *MovePattern {
	if runLength < 1 {
		runLength = 1
	}
	steps := make([]float64, 0, repeat*3)
	for i := 0; i < repeat; i++ {
		steps = append(steps, speed, -speed, 0)
	}
	p := &MovePattern{
		steps:     steps,
		runLength: runLength,
		reshuffle: reshuffle,
	}
	p.shuffle(rng)
	return p
}

// Next returns this tick's vertical step and advances the run state.
func (p *MovePattern) Next(rng Rand) float64 {
	if len(p.steps) == 0 {
		return 0
	}
	step := p.steps[p.cursor]
	p.run++
	if p.run == p.runLength {
		if p.reshuffle {
			p.shuffle(rng)
		}
		p.run = 0
		p.cursor = (p.cursor + 1) % len(p.steps)
	}
	return step
}

func (p *MovePattern) shuffle(rng Rand) {
	rng.Shuffle(len(p.steps), func(i, j int) {
		p.steps[i], p.steps[j] = p.steps[j], p.steps[i]
	})
	p.shuffles++
}

// Cursor returns the index of the step used by the next call to Next.
func (p *MovePattern) Cursor() int {
	return p.cursor
}

// Run returns how many consecutive ticks the current position has been used.
func (p *MovePattern) Run() int {
	return p.run
}

// Shuffles returns how many times the pattern has been permuted,
// including the initial shuffle.
func (p *MovePattern) Shuffles() int {
	return p.shuffles
}

// Steps returns a copy of the current pattern.
func (p *MovePattern) Steps() []float64 {
	out := make([]float64, len(p.steps))
	copy(out, p.steps)
	return out
}
