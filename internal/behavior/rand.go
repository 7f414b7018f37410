// Package behavior holds the stateful building blocks of enemy AI: the
// cyclic movement pattern, the shield timer and fire volleys. They hold no
// entity references and are driven once per tick by their owner.
package behavior

// Rand is the randomness a behavior draws from. *math/rand.Rand satisfies it;
// the simulation passes one seeded source so runs are reproducible.
type Rand interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// Bernoulli performs one trial with success probability p.
// p <= 0 never succeeds and does not consume randomness.
func Bernoulli(rng Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	return rng.Float64() < p
}
