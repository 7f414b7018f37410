package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfighter/internal/audio"
	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/level"
	"github.com/vovakirdan/skyfighter/internal/platform/tui"
	"github.com/vovakirdan/skyfighter/internal/session"
	"github.com/vovakirdan/skyfighter/internal/storage"
)

var (
	flagLevel      string
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the campaign",
	Long: `Start a run of the campaign.

Controls:
  Up/W, Down/S      - Climb / dive
  Left/A, Right/D   - Fall back / push forward
  Space             - Fire
  P/Esc             - Pause
  R                 - Restart (after the run ends)
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Fewer enemies, slower fire, 7 health
  normal - Tuning as configured
  hard   - More enemies, faster fire, 3 health

Examples:
  skyfighter play
  skyfighter play --difficulty hard
  skyfighter play --level level-three
  skyfighter play --config ./my-skyfighter.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start at (default: first level)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config on change (applied at the next level)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagWatch && flagConfig == "" {
		return errors.New("--watch requires --config")
	}

	logger, logCloser, err := newLogger(defaultLogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg, preset, err := loadTuning(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var sound level.Audio = audio.Nop{}
	if !flagMute && cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio, logger)
		if err := sm.Initialize(); err != nil {
			// Play on without sound
			logger.Warn("audio unavailable", "err", err)
		} else {
			defer sm.Close()
			sound = sm
		}
	}

	runtime := runtimeFor(cfg)
	sess, err := session.New(session.Options{
		Config:     cfg,
		Runtime:    runtime,
		StartLevel: flagLevel,
		Audio:      sound,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("%w (run 'skyfighter levels' to see available levels)", err)
	}
	if err := sess.Start(); err != nil {
		return err
	}
	defer sess.Close()

	var changes <-chan config.Config
	if flagWatch {
		w, err := config.Watch(flagConfig, logger)
		if err != nil {
			return fmt.Errorf("cannot watch config: %w", err)
		}
		defer w.Close()
		changes = w.Changes()
	}

	// Run history is optional, the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Session: sess,
		Store:   store,
		Period:  runtime.TickPeriod,
		Preset:  preset,
		Changes: changes,
		Width:   width,
		Height:  height,
		Logger:  logger,
	})
}
