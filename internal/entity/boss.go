package entity

import (
	"github.com/vovakirdan/skyfighter/internal/behavior"
)

// Brain is the behavior state owned by a single boss. Neither the pattern
// nor the shield timer is shared between bosses.
type Brain struct {
	Title  string
	Phase  int // 0 for the first phase
	Moves  *behavior.MovePattern
	Shield *behavior.ShieldTimer

	minY, maxY float64
}

// State returns the shield state name, for logs and the HUD.
func (b *Brain) State() behavior.ShieldState {
	return b.Shield.State()
}
