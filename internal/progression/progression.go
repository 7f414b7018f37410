// Package progression tracks kills and decides when a level is won, lost
// or advanced.
package progression

import "github.com/vovakirdan/skyfighter/internal/config"

// Rule is the win condition of a level.
type Rule int

const (
	// RuleKillThreshold advances once enough enemies have been killed.
	RuleKillThreshold Rule = iota
	// RuleBossDefeated wins the game when the final boss phase dies.
	RuleBossDefeated
)

// String returns a human-readable name for the rule.
func (r Rule) String() string {
	switch r {
	case RuleKillThreshold:
		return "kills"
	case RuleBossDefeated:
		return "boss"
	default:
		return "unknown"
	}
}

// Outcome is the result of one evaluation.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAdvance
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeAdvance:
		return "advance"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Status is the level state an evaluation looks at.
type Status struct {
	PlayerDestroyed bool
	BossDefeated    bool
}

// Tracker counts kills for one level and evaluates its end conditions.
type Tracker struct {
	rule      Rule
	threshold int
	next      string

	kills     int
	switching bool // Set once an advance has been emitted
	finished  bool // Set once a win or loss has been emitted
}

// NewTracker creates a tracker for the level. Levels with boss phases use
// RuleBossDefeated, all others use their kill threshold.
func NewTracker(lvl config.LevelConfig) *Tracker {
	t := &Tracker{
		rule:      RuleKillThreshold,
		threshold: lvl.KillThreshold,
		next:      lvl.Next,
	}
	if len(lvl.BossPhases) > 0 {
		t.rule = RuleBossDefeated
	}
	return t
}

// Rule returns the level's win condition.
func (t *Tracker) Rule() Rule {
	return t.rule
}

// Next returns the id of the level that follows, or "" for the last one.
func (t *Tracker) Next() string {
	return t.next
}

// RecordKills adds n kills and returns the new total. Negative n is ignored.
func (t *Tracker) RecordKills(n int) int {
	if n > 0 {
		t.kills += n
	}
	return t.kills
}

// Kills returns the kills recorded so far.
func (t *Tracker) Kills() int {
	return t.kills
}

// Threshold returns the kills needed to advance, 0 on boss levels.
func (t *Tracker) Threshold() int {
	if t.rule != RuleKillThreshold {
		return 0
	}
	return t.threshold
}

// Progress returns kills over threshold in [0, 1] for kill levels.
func (t *Tracker) Progress() float64 {
	if t.rule != RuleKillThreshold || t.threshold <= 0 {
		return 0
	}
	return min(float64(t.kills)/float64(t.threshold), 1)
}

// Switching reports whether an advance is in flight.
func (t *Tracker) Switching() bool {
	return t.switching
}

// BeginSwitch takes the switching latch. It returns false if a transition
// is already in flight.
func (t *Tracker) BeginSwitch() bool {
	if t.switching {
		return false
	}
	t.switching = true
	return true
}

// Evaluate checks the level's end conditions. Loss is checked first.
// Each outcome other than OutcomeNone is returned at most once; further
// calls return OutcomeNone.
func (t *Tracker) Evaluate(s Status) Outcome {
	if t.finished || t.switching {
		return OutcomeNone
	}
	if s.PlayerDestroyed {
		t.finished = true
		return OutcomeLose
	}

	switch t.rule {
	case RuleBossDefeated:
		if s.BossDefeated {
			t.finished = true
			return OutcomeWin
		}
	case RuleKillThreshold:
		if t.kills < t.threshold {
			return OutcomeNone
		}
		if t.next == "" {
			t.finished = true
			return OutcomeWin
		}
		if t.BeginSwitch() {
			return OutcomeAdvance
		}
	}
	return OutcomeNone
}
