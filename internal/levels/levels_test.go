package levels

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/registry"
)

func TestCampaignRegistered(t *testing.T) {
	list := registry.List()
	expected := []string{LevelOne, LevelTwo, LevelThree}
	if len(list) != len(expected) {
		t.Fatalf("List() = %d levels, expected %d", len(list), len(expected))
	}
	for i, id := range expected {
		if list[i].ID != id {
			t.Errorf("List()[%d] = %q, expected %q", i, list[i].ID, id)
		}
	}
}

func TestDefaultConfigCoversCampaign(t *testing.T) {
	cfg := config.Default()
	for _, info := range registry.List() {
		if _, ok := cfg.Level(info.ID); !ok {
			t.Errorf("level %q is registered but not tuned", info.ID)
		}
	}
}

func TestBuildUsesRuntime(t *testing.T) {
	ctx := registry.BuildContext{
		Config:  config.Default(),
		Runtime: core.RuntimeConfig{ViewportW: 1300, ViewportH: 750, PlayerHealth: 3},
		Rand:    rand.New(rand.NewSource(1)),
	}

	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			l, err := registry.Create(info.ID, ctx)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			l.InitializeScene()
			if got := l.Player().Health; got != 3 {
				t.Errorf("player health = %d, expected 3", got)
			}
			if l.ID() != info.ID {
				t.Errorf("ID() = %q, expected %q", l.ID(), info.ID)
			}
		})
	}
}
