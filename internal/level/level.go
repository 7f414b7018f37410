// Package level runs one level of the game on a fixed tick.
//
// A Level exclusively owns its entity collections. Each Tick runs the
// same ordered sequence of steps; other packages only see entity slices
// for the duration of a call. Level transitions are not performed here:
// Tick reports them in its StepResult and the host switches after the
// tick has returned.
package level

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfighter/internal/behavior"
	"github.com/vovakirdan/skyfighter/internal/collision"
	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/entity"
	"github.com/vovakirdan/skyfighter/internal/progression"
	"github.com/vovakirdan/skyfighter/internal/spawn"
)

// ErrNotInitialized is returned by operations that need a built scene.
var ErrNotInitialized = errors.New("level: scene not initialized")

// Options configures a new level.
type Options struct {
	Config       config.Config
	ID           string        // Level id in Config.Levels
	PlayerHealth int           // 0 uses the tuned player health
	Rand         behavior.Rand // Shared by every random draw of the level
	Presenter    Presenter
	Audio        Audio
	Logger       *log.Logger
}

// Level is one running level.
type Level struct {
	cfg    config.Config
	lvl    config.LevelConfig
	rng    behavior.Rand
	logger *log.Logger

	presenter Presenter
	audio     Audio

	factory *entity.Factory
	spawner *spawn.Controller
	tracker *progression.Tracker

	state        State
	tick         uint64
	playerHealth int

	player      *entity.Entity
	friendlies  []*entity.Entity
	enemies     []*entity.Entity
	playerShots []*entity.Entity
	enemyShots  []*entity.Entity
	pickups     []*entity.Entity
	enemyCount  int
}

// New builds a level from its tuning. Entities are not created until
// InitializeScene.
func New(opts Options) (*Level, error) {
	lvl, ok := opts.Config.Level(opts.ID)
	if !ok {
		return nil, fmt.Errorf("level: %q is not configured", opts.ID)
	}

	l := &Level{
		cfg:          opts.Config,
		lvl:          lvl,
		rng:          opts.Rand,
		logger:       opts.Logger,
		presenter:    opts.Presenter,
		audio:        opts.Audio,
		playerHealth: opts.PlayerHealth,
		tracker:      progression.NewTracker(lvl),
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(1))
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	l.logger = l.logger.With("level", lvl.ID)
	if l.presenter == nil {
		l.presenter = nopPresenter{}
	}
	if l.audio == nil {
		l.audio = nopAudio{}
	}

	l.factory = entity.NewFactory(opts.Config)
	l.factory.OnDestroy(l.destroyed)

	spawner, err := spawn.New(l.factory, opts.Config, lvl, l.logger)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	l.spawner = spawner
	return l, nil
}

// ID returns the level id.
func (l *Level) ID() string {
	return l.lvl.ID
}

// Title returns the display title.
func (l *Level) Title() string {
	return l.lvl.Title
}

// State returns the orchestrator state.
func (l *Level) State() State {
	return l.state
}

// InitializeScene creates the player and starts the music loop.
// Calling it again is a no-op.
func (l *Level) InitializeScene() {
	if l.state != StateUninitialized {
		return
	}
	l.player = l.factory.Player(l.playerHealth)
	l.friendlies = []*entity.Entity{l.player}
	l.presenter.Attach(l.player)
	if err := l.audio.PlayLoop(core.CueMusic); err != nil {
		l.logger.Warn("cannot start music", "err", err)
	}
	l.state = StateRunning
	l.logger.Info("level started", "title", l.lvl.Title, "health", l.player.Health, "rule", l.tracker.Rule())
}

// HandleIntent applies one input intent to the player. Apart from
// TogglePause, intents are ignored unless the level is running.
func (l *Level) HandleIntent(a core.Action) {
	if a == core.ActionTogglePause {
		l.TogglePause()
		return
	}
	if l.state != StateRunning {
		return
	}
	switch a {
	case core.ActionFire:
		shots := l.factory.Fire(l.player, l.rng)
		if len(shots) == 0 {
			return
		}
		l.playerShots = append(l.playerShots, shots...)
		l.presenter.AttachAll(shots)
		l.effect(core.CueShot)
	default:
		l.player.Steer(a)
	}
}

// TogglePause switches between running and paused. It has no effect in
// any other state and returns the resulting state.
func (l *Level) TogglePause() State {
	switch l.state {
	case StateRunning:
		l.state = StatePaused
		l.logger.Debug("paused", "tick", l.tick)
	case StatePaused:
		l.state = StateRunning
		l.logger.Debug("resumed", "tick", l.tick)
	}
	return l.state
}

// RequestTransition asks to leave the level for next. Only the first
// request while no transition is in flight succeeds; later ones are
// ignored and return false.
func (l *Level) RequestTransition(next string) (string, bool) {
	if l.state != StateRunning && l.state != StatePaused {
		return "", false
	}
	if next == "" || !l.tracker.BeginSwitch() {
		return "", false
	}
	l.state = StateSwitching
	l.logger.Info("transition requested", "next", next)
	return next, true
}

// Tick advances the level by one step. Outside StateRunning it mutates
// nothing and only reports the current state.
func (l *Level) Tick() core.StepResult {
	if l.state != StateRunning {
		return core.StepResult{State: l.Status()}
	}
	l.tick++

	l.reap()
	l.spawn()
	l.update()
	l.collectPickups()
	l.enemyFire()
	l.enemyCount = countLive(l.enemies)
	l.penetrate()
	l.collide()
	l.countKills()
	return l.evaluate()
}

// reap removes every destroyed entity from its collection and detaches it.
func (l *Level) reap() {
	l.friendlies = l.filter(l.friendlies)
	l.enemies = l.filter(l.enemies)
	l.playerShots = l.filter(l.playerShots)
	l.enemyShots = l.filter(l.enemyShots)
	l.pickups = l.filter(l.pickups)
}

// filter returns the live entities of es in a new slice and detaches the
// rest.
func (l *Level) filter(es []*entity.Entity) []*entity.Entity {
	live := make([]*entity.Entity, 0, len(es))
	var dead []*entity.Entity
	for _, e := range es {
		if e.IsDestroyed() {
			dead = append(dead, e)
			continue
		}
		live = append(live, e)
	}
	if len(dead) > 0 {
		l.presenter.DetachAll(dead)
	}
	return live
}

func (l *Level) spawn() {
	if spawned := l.spawner.Enemies(l.rng, countLive(l.enemies)); len(spawned) > 0 {
		l.enemies = append(l.enemies, spawned...)
		l.presenter.AttachAll(spawned)
		for _, e := range spawned {
			if e.Kind.IsBoss() {
				l.effect(core.CueBoss)
			}
		}
	}
	if heart := l.spawner.Pickup(l.rng); heart != nil {
		l.pickups = append(l.pickups, heart)
		l.presenter.Attach(heart)
	}
}

// update advances every entity and culls projectiles that have left the
// screen on their side of travel.
func (l *Level) update() {
	for _, group := range [][]*entity.Entity{l.friendlies, l.enemies, l.playerShots, l.enemyShots, l.pickups} {
		for _, e := range group {
			e.Update(l.rng)
		}
	}

	width := l.cfg.Viewport.Width
	for _, p := range l.enemyShots {
		if p.Position().X <= 0 {
			p.Destroy(entity.CauseOffscreen)
		}
	}
	for _, p := range l.playerShots {
		if p.Position().X >= width {
			p.Destroy(entity.CauseOffscreen)
		}
	}
	l.enemyShots = l.filter(l.enemyShots)
	l.playerShots = l.filter(l.playerShots)
}

func (l *Level) collectPickups() {
	if l.player.IsDestroyed() || len(l.pickups) == 0 {
		return
	}
	for _, heart := range collision.Overlapping(l.player, l.pickups) {
		l.player.Heal(heart.HealAmount(), l.player.MaxHealth)
		heart.Destroy(entity.CauseCollected)
		l.logger.Debug("pickup collected", "id", heart.ID, "health", l.player.Health)
	}
	l.pickups = l.filter(l.pickups)
}

func (l *Level) enemyFire() {
	for _, e := range l.enemies {
		if shots := l.factory.Fire(e, l.rng); len(shots) > 0 {
			l.enemyShots = append(l.enemyShots, shots...)
			l.presenter.AttachAll(shots)
		}
	}
}

// penetrate destroys enemies and projectiles that got past their
// boundary. Each penetrating enemy damages the player once.
func (l *Level) penetrate() {
	limit := l.cfg.EnemyPenetration()
	for _, e := range l.enemies {
		if e.IsDestroyed() || e.Displacement() <= limit {
			continue
		}
		if e.Destroy(entity.CausePenetration) {
			l.player.TakeDamage()
			l.effect(core.CueDamage)
			l.logger.Debug("enemy penetrated", "id", e.ID, "health", l.player.Health)
		}
	}

	limit = l.cfg.Boundaries.ProjectilePenetration
	for _, group := range [][]*entity.Entity{l.enemyShots, l.playerShots} {
		for _, p := range group {
			if !p.IsDestroyed() && p.Displacement() > limit {
				p.Destroy(entity.CausePenetration)
			}
		}
	}
}

func (l *Level) collide() {
	collision.Resolve(l.playerShots, l.enemies, l.logger)
	collision.Resolve(l.enemyShots, l.friendlies, l.logger)
	collision.Resolve(l.friendlies, l.enemies, l.logger)
}

// countKills credits every destroyed enemy once, then purges it.
func (l *Level) countKills() {
	killed := 0
	for _, e := range l.enemies {
		if e.IsDestroyed() {
			killed++
		}
	}
	if killed == 0 {
		return
	}
	total := l.tracker.RecordKills(killed)
	l.enemies = l.filter(l.enemies)
	l.enemyCount = len(l.enemies)
	l.logger.Debug("kills", "new", killed, "total", total)
}

func (l *Level) evaluate() core.StepResult {
	status := progression.Status{PlayerDestroyed: l.player.IsDestroyed()}
	if phases := l.spawner.Phases(); phases != nil {
		status.BossDefeated = phases.Defeated()
	}

	var result core.StepResult
	switch l.tracker.Evaluate(status) {
	case progression.OutcomeAdvance:
		l.state = StateSwitching
		result.Transition = l.tracker.Next()
		l.logger.Info("level complete", "kills", l.tracker.Kills(), "next", result.Transition)
	case progression.OutcomeWin:
		l.finish(StateWon, core.CueWin)
	case progression.OutcomeLose:
		l.finish(StateLost, core.CueLose)
	}
	result.State = l.Status()
	return result
}

// finish moves to a terminal state. The level never ticks again.
func (l *Level) finish(s State, cue core.Cue) {
	l.state = s
	if err := l.audio.Stop(); err != nil {
		l.logger.Warn("cannot stop audio", "err", err)
	}
	l.effect(cue)
	l.logger.Info("level finished", "state", s, "kills", l.tracker.Kills(), "tick", l.tick)
}

// Teardown detaches and drops every entity. The level cannot be used
// afterwards. Calling it again is a no-op.
func (l *Level) Teardown() {
	if l.state == StateTornDown {
		return
	}
	if live := l.Entities(); len(live) > 0 {
		l.presenter.DetachAll(live)
	}
	l.friendlies = nil
	l.enemies = nil
	l.playerShots = nil
	l.enemyShots = nil
	l.pickups = nil
	l.enemyCount = 0
	l.state = StateTornDown
	l.logger.Debug("level torn down")
}

// destroyed is the destruction hook of every entity built by the level.
func (l *Level) destroyed(e *entity.Entity, cause entity.Cause) {
	switch {
	case e.Kind == entity.KindPickup && cause == entity.CauseCollected:
		l.effect(core.CuePickup)
	case e.Kind == entity.KindPlayer, e.Kind == entity.KindBasicEnemy, e.Kind.IsBoss():
		l.effect(core.CueExplosion)
		if e.Kind.IsBoss() {
			l.logger.Info("boss destroyed", "title", e.Brain().Title, "phase", e.Brain().Phase)
		}
	}
}

func (l *Level) effect(cue core.Cue) {
	if err := l.audio.PlayEffect(cue, l.cfg.Audio.EffectVolume); err != nil {
		l.logger.Warn("cannot play effect", "cue", cue, "err", err)
	}
}

func countLive(es []*entity.Entity) int {
	n := 0
	for _, e := range es {
		if !e.IsDestroyed() {
			n++
		}
	}
	return n
}
