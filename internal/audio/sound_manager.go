// Package audio plays synthesized cues through the system speaker.
package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
)

const sampleRate = beep.SampleRate(44100)

var (
	// ErrNotInitialized is returned when playing before Initialize.
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	// ErrUnknownCue is returned for cues without a sound.
	ErrUnknownCue = errors.New("audio: unknown cue")
)

// SoundManager mixes effect cues and one background loop.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicCue    core.Cue
	musicVolume float64
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager. Nothing is played until
// Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		mixer:       &beep.Mixer{},
		musicVolume: cfg.MusicVolume,
		logger:      logger,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlayEffect mixes a one-shot cue at the given linear volume.
func (sm *SoundManager) PlayEffect(cue core.Cue, volume float64) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	s := synth(cue, sampleRate)
	if s == nil {
		return fmt.Errorf("%w %q", ErrUnknownCue, cue)
	}

	speaker.Lock()
	sm.mixer.Add(scale(s, volume))
	speaker.Unlock()
	return nil
}

// PlayLoop starts a looping cue. Requesting the loop that is already
// playing keeps it going without restarting it.
func (sm *SoundManager) PlayLoop(cue core.Cue) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil && sm.musicCue == cue {
		sm.music.Paused = false
		return nil
	}
	s := synth(cue, sampleRate)
	if s == nil {
		return fmt.Errorf("%w %q", ErrUnknownCue, cue)
	}
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.music = &beep.Ctrl{Streamer: scale(s, sm.musicVolume)}
	sm.musicCue = cue
	sm.mixer.Add(sm.music)
	sm.logger.Debug("loop started", "cue", cue)
	return nil
}

// Stop silences everything currently playing.
func (sm *SoundManager) Stop() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.musicCue = ""
	return nil
}

// Close stops playback and releases the speaker.
func (sm *SoundManager) Close() {
	_ = sm.Stop()

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Close()
		sm.initialized = false
	}
}

// Nop discards every cue.
type Nop struct{}

func (Nop) PlayEffect(core.Cue, float64) error { return nil }
func (Nop) PlayLoop(core.Cue) error            { return nil }
func (Nop) Stop() error                        { return nil }
