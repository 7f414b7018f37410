package level

import (
	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/entity"
)

// State is the orchestrator state of a level.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StatePaused
	StateSwitching // Advance emitted, waiting for the host
	StateWon
	StateLost
	StateTornDown
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateSwitching:
		return "switching"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateTornDown:
		return "torn down"
	default:
		return "unknown"
	}
}

// Terminal reports whether the level ended in a win or loss.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Status returns the state reported to the host.
func (l *Level) Status() core.GameState {
	gs := core.GameState{
		Level:    l.lvl.ID,
		Kills:    l.tracker.Kills(),
		Tick:     l.tick,
		Paused:   l.state == StatePaused,
		GameOver: l.state.Terminal(),
		Won:      l.state == StateWon,
	}
	if l.player != nil {
		gs.Health = max(l.player.Health, 0)
	}
	return gs
}

// Player returns the player entity, or nil before InitializeScene.
func (l *Level) Player() *entity.Entity {
	return l.player
}

// Kills returns the kills recorded in this level.
func (l *Level) Kills() int {
	return l.tracker.Kills()
}

// Progress returns the kill count and the threshold to advance.
// threshold is 0 on boss levels.
func (l *Level) Progress() (kills, threshold int) {
	return l.tracker.Kills(), l.tracker.Threshold()
}

// Boss returns the current boss phase while it is alive, or nil.
func (l *Level) Boss() *entity.Entity {
	phases := l.spawner.Phases()
	if phases == nil {
		return nil
	}
	if b := phases.Current(); b != nil && !b.IsDestroyed() {
		return b
	}
	return nil
}

// EnemyCount returns the enemy count recomputed during the last tick.
func (l *Level) EnemyCount() int {
	return l.enemyCount
}

// Counts reports the size of each collection.
type Counts struct {
	Friendlies  int
	Enemies     int
	PlayerShots int
	EnemyShots  int
	Pickups     int
}

// Counts returns the current collection sizes, destroyed entities included.
func (l *Level) Counts() Counts {
	return Counts{
		Friendlies:  len(l.friendlies),
		Enemies:     len(l.enemies),
		PlayerShots: len(l.playerShots),
		EnemyShots:  len(l.enemyShots),
		Pickups:     len(l.pickups),
	}
}

// Entities returns every entity the level holds, in a new slice:
// friendlies, enemies, pickups, player projectiles, enemy projectiles.
func (l *Level) Entities() []*entity.Entity {
	out := make([]*entity.Entity, 0, len(l.friendlies)+len(l.enemies)+len(l.pickups)+len(l.playerShots)+len(l.enemyShots))
	out = append(out, l.friendlies...)
	out = append(out, l.enemies...)
	out = append(out, l.pickups...)
	out = append(out, l.playerShots...)
	out = append(out, l.enemyShots...)
	return out
}
