package core

// Cue names a sound the simulation asks the audio port to play.
type Cue string

const (
	CueShot      Cue = "shot"      // Player fired
	CueExplosion Cue = "explosion" // A plane was destroyed
	CueDamage    Cue = "damage"    // Player lost health to a penetration
	CuePickup    Cue = "pickup"    // Heart collected
	CueBoss      Cue = "boss"      // Boss phase entered
	CueWin       Cue = "win"
	CueLose      Cue = "lose"
	CueMusic     Cue = "music" // Background loop
)

// Cues lists every cue, in a stable order.
func Cues() []Cue {
	return []Cue{CueShot, CueExplosion, CueDamage, CuePickup, CueBoss, CueWin, CueLose, CueMusic}
}
