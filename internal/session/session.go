// Package session hosts a run of the campaign: it builds levels through
// the registry, feeds them input, and performs level transitions after
// the tick that requested them has returned.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/level"
	"github.com/vovakirdan/skyfighter/internal/registry"
)

// Run outcomes reported in summaries.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// ErrEnded is returned by Advance once the run has ended.
var ErrEnded = errors.New("session: run has ended")

// Options configures a session.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	StartLevel string      // "" starts at the first configured level
	Audio      level.Audio // nil disables sound
	Logger     *log.Logger
}

// Summary describes a run for the history table.
type Summary struct {
	RunID   string
	Level   string // Last level reached
	Kills   int    // Across all levels
	Outcome string
	Ticks   uint64 // Across all levels
	Seed    int64
}

// Session is one run of the campaign.
type Session struct {
	cfg     config.Config
	reload  *config.Config // Applied at the next level construction
	runtime core.RuntimeConfig
	start   string
	rng     *rand.Rand
	audio   level.Audio
	logger  *log.Logger

	runID   uuid.UUID
	scene   *Scene
	current *level.Level
	pending string

	banked      int    // Kills from finished levels
	bankedTicks uint64 // Ticks from finished levels
}

// New creates a session. The start level must be registered.
func New(opts Options) (*Session, error) {
	start := opts.StartLevel
	if start == "" {
		start = opts.Config.FirstLevel()
	}
	if !registry.Exists(start) {
		return nil, fmt.Errorf("%w %q", registry.ErrUnknownLevel, start)
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := opts.Runtime
	runtime.Seed = seed
	if runtime.ViewportW <= 0 || runtime.ViewportH <= 0 {
		runtime.ViewportW = opts.Config.Viewport.Width
		runtime.ViewportH = opts.Config.Viewport.Height
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		cfg:     opts.Config,
		runtime: runtime,
		start:   start,
		rng:     rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		audio:   opts.Audio,
		logger:  logger,
		runID:   uuid.New(),
		scene:   NewScene(),
	}, nil
}

// RunID returns the identifier of the current run.
func (s *Session) RunID() string {
	return s.runID.String()
}

// Seed returns the RNG seed of the session.
func (s *Session) Seed() int64 {
	return s.runtime.Seed
}

// Level returns the running level, or nil before Start.
func (s *Session) Level() *level.Level {
	return s.current
}

// Scene returns the set of live entities.
func (s *Session) Scene() *Scene {
	return s.scene
}

// Start builds the start level.
func (s *Session) Start() error {
	s.logger.Info("run started", "run", s.RunID(), "seed", s.runtime.Seed, "level", s.start)
	return s.load(s.start)
}

// load tears down the current level, then builds and initializes id.
func (s *Session) load(id string) error {
	if s.current != nil {
		s.bankedTicks += s.current.Status().Tick
		s.current.Teardown()
		s.current = nil
	}
	if s.reload != nil {
		s.cfg = *s.reload
		s.reload = nil
		s.logger.Info("config reloaded")
	}

	l, err := registry.Create(id, registry.BuildContext{
		Config:    s.cfg,
		Runtime:   s.runtime,
		Rand:      s.rng,
		Presenter: s.scene,
		Audio:     s.audio,
		Logger:    s.logger,
	})
	if err != nil {
		return err
	}
	l.InitializeScene()
	s.current = l
	s.pending = ""
	return nil
}

// Step applies the frame's intents in order, then ticks the level once.
// Host-level actions (Restart, Quit) are ignored here.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.current == nil {
		return core.StepResult{}
	}
	for _, a := range in.Actions {
		switch a {
		case core.ActionRestart, core.ActionQuit, core.ActionNone:
			continue
		}
		s.current.HandleIntent(a)
	}

	res := s.current.Tick()
	if res.Transition != "" {
		s.pending = res.Transition
	}
	if res.State.GameOver {
		s.logger.Info("run ended", "run", s.RunID(), "won", res.State.Won, "kills", s.banked+res.State.Kills)
	}
	return res
}

// Pending returns the level a transition is waiting for, or "".
func (s *Session) Pending() string {
	return s.pending
}

// Advance switches to level id. The current level is torn down before
// the next one is built.
func (s *Session) Advance(id string) error {
	if s.current != nil && s.current.State().Terminal() {
		return ErrEnded
	}
	if s.current != nil {
		s.banked += s.current.Kills()
	}
	s.logger.Info("advancing", "from", s.levelID(), "to", id)
	return s.load(id)
}

// Restart begins a new run from the start level with a new run id.
func (s *Session) Restart() error {
	s.banked = 0
	s.bankedTicks = 0
	if s.current != nil {
		s.current.Teardown()
		s.current = nil
	}
	s.runID = uuid.New()
	s.logger.Info("run restarted", "run", s.RunID())
	return s.load(s.start)
}

// UpdateConfig replaces the tuning used for the next level built. The
// running level keeps its tuning.
func (s *Session) UpdateConfig(cfg config.Config) {
	s.reload = &cfg
}

// State returns the state of the running level.
func (s *Session) State() core.GameState {
	if s.current == nil {
		return core.GameState{}
	}
	return s.current.Status()
}

// TotalKills returns kills across all levels of the run.
func (s *Session) TotalKills() int {
	if s.current == nil {
		return s.banked
	}
	return s.banked + s.current.Kills()
}

// Snapshot returns the running level's snapshot.
func (s *Session) Snapshot() (level.Snapshot, error) {
	if s.current == nil {
		return level.Snapshot{}, level.ErrNotInitialized
	}
	return s.current.Snapshot()
}

// Summary describes the run so far.
func (s *Session) Summary() Summary {
	st := s.State()
	outcome := OutcomeAbandoned
	switch {
	case st.GameOver && st.Won:
		outcome = OutcomeWon
	case st.GameOver:
		outcome = OutcomeLost
	}
	return Summary{
		RunID:   s.RunID(),
		Level:   s.levelID(),
		Kills:   s.TotalKills(),
		Outcome: outcome,
		Ticks:   s.bankedTicks + st.Tick,
		Seed:    s.runtime.Seed,
	}
}

// Close tears down the level and stops audio.
func (s *Session) Close() error {
	if s.current != nil {
		s.current.Teardown()
	}
	if s.audio != nil {
		if err := s.audio.Stop(); err != nil {
			return fmt.Errorf("session: cannot stop audio: %w", err)
		}
	}
	return nil
}

func (s *Session) levelID() string {
	if s.current == nil {
		return ""
	}
	return s.current.ID()
}
