package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/session"
	"github.com/vovakirdan/skyfighter/internal/storage"
)

// Options configures the play model.
type Options struct {
	Session *session.Session
	Store   *storage.Store // nil disables run history
	Period  time.Duration  // Tick period
	Preset  config.DifficultyPreset
	Changes <-chan config.Config // Reloaded configs, nil when not watching
	Width   int
	Height  int
	Logger  *log.Logger
}

// Model is the Bubble Tea model for playing a run.
type Model struct {
	sess     *session.Session
	store    *storage.Store
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	frame    core.InputFrame
	steer    Steering
	period   time.Duration
	preset   config.DifficultyPreset
	changes  <-chan config.Config
	logger   *log.Logger
	state    core.GameState
	saved    bool // Whether the current run has been recorded
	quitting bool
	err      error
}

// NewModel creates a new Bubble Tea model around a started session.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	period := opts.Period
	if period <= 0 {
		period = core.DefaultConfig().TickPeriod
	}

	return Model{
		sess:    opts.Session,
		store:   opts.Store,
		screen:  core.NewScreen(opts.Width, core.Max(opts.Height-1, 0)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		frame:   core.NewInputFrame(),
		steer:   NewSteering(),
		period:  period,
		preset:  opts.Preset,
		changes: opts.Changes,
		logger:  logger,
		state:   opts.Session.State(),
	}
}

// Init starts the tick loop and the config watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.period), watchCmd(m.changes))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case advanceMsg:
		return m.handleAdvance(msg.to)

	case reloadMsg:
		cfg := msg.cfg
		config.ApplyPreset(&cfg, m.preset)
		m.sess.UpdateConfig(cfg)
		m.logger.Info("config change queued for the next level")
		return m, watchCmd(m.changes)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionNone:
	case core.ActionQuit:
		if m.sess.TotalKills() > 0 {
			m.saveRun()
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if !m.state.GameOver {
			return m, nil
		}
		if err := m.sess.Restart(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.state = m.sess.State()
		m.saved = false
		m.frame.Clear()
		m.steer.Reset()
	default:
		m.frame.Set(a)
		m.steer.Press(a)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.steer.Tick(&m.frame)
	res := m.sess.Step(m.frame)
	m.frame.Clear()
	m.state = res.State

	if m.state.GameOver && !m.saved {
		m.saveRun()
	}

	cmds := []tea.Cmd{tickCmd(m.period)}
	if res.Transition != "" {
		cmds = append(cmds, advanceCmd(res.Transition))
	}
	return m, tea.Batch(cmds...)
}

// handleAdvance performs a level switch requested by an earlier tick.
func (m Model) handleAdvance(to string) (tea.Model, tea.Cmd) {
	if err := m.sess.Advance(to); err != nil {
		m.logger.Error("level switch failed", "to", to, "err", err)
		m.err = err
		return m, tea.Quit
	}
	m.state = m.sess.State()
	m.frame.Clear()
	m.steer.Reset()
	return m, nil
}

// saveRun records the run once.
func (m *Model) saveRun() {
	m.saved = true
	if m.store == nil {
		return
	}
	sum := m.sess.Summary()
	_, err := m.store.SaveRun(storage.Run{
		RunID:   sum.RunID,
		Level:   sum.Level,
		Kills:   sum.Kills,
		Outcome: sum.Outcome,
		Ticks:   sum.Ticks,
		Seed:    sum.Seed,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Warn("cannot save run", "run", sum.RunID, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.sess.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".skyfighter", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.state.Level, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sess.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a started session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
