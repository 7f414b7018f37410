package level

import (
	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/entity"
)

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . Presenter,Audio

// Presenter is told which entities are live. The level never renders;
// implementations must not keep the slices passed to AttachAll and
// DetachAll after the call returns.
type Presenter interface {
	Attach(e *entity.Entity)
	Detach(e *entity.Entity)
	AttachAll(es []*entity.Entity)
	DetachAll(es []*entity.Entity)
}

// Audio plays cues. Errors are logged by the level and otherwise ignored.
type Audio interface {
	PlayEffect(cue core.Cue, volume float64) error
	PlayLoop(cue core.Cue) error
	Stop() error
}

type nopPresenter struct{}

func (nopPresenter) Attach(*entity.Entity)      {}
func (nopPresenter) Detach(*entity.Entity)      {}
func (nopPresenter) AttachAll([]*entity.Entity) {}
func (nopPresenter) DetachAll([]*entity.Entity) {}

type nopAudio struct{}

func (nopAudio) PlayEffect(core.Cue, float64) error { return nil }
func (nopAudio) PlayLoop(core.Cue) error            { return nil }
func (nopAudio) Stop() error                        { return nil }
