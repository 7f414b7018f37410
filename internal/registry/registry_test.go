package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/level"
)

func init() {
	Register(LevelInfo{ID: "test-b", Title: "B", Order: 2}, buildFromConfig("level-two"))
	Register(LevelInfo{ID: "test-a", Title: "A", Order: 1}, buildFromConfig("level-one"))
}

func buildFromConfig(id string) Factory {
	return func(ctx BuildContext) (*level.Level, error) {
		return level.New(level.Options{Config: ctx.Config, ID: id, Rand: ctx.Rand})
	}
}

func TestCreate(t *testing.T) {
	l, err := Create("test-a", BuildContext{Config: config.Default()})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if l.ID() != "level-one" {
		t.Errorf("ID() = %q, expected level-one", l.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope", BuildContext{Config: config.Default()})
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Create() error = %v, expected ErrUnknownLevel", err)
	}
}

func TestCreateFactoryError(t *testing.T) {
	cfg := config.Default()
	cfg.Levels = cfg.Levels[1:] // drop level-one

	_, err := Create("test-a", BuildContext{Config: cfg})
	if err == nil {
		t.Fatal("Create() returned no error for a level missing from the config")
	}
	if errors.Is(err, ErrUnknownLevel) {
		t.Error("factory failure reported as an unknown level")
	}
}

func TestListOrder(t *testing.T) {
	list := List()
	if len(list) != 2 {
		t.Fatalf("List() = %d levels, expected 2", len(list))
	}
	if list[0].ID != "test-a" || list[1].ID != "test-b" {
		t.Errorf("List() order = %s, %s, expected test-a, test-b", list[0].ID, list[1].ID)
	}
}

func TestExists(t *testing.T) {
	if !Exists("test-a") {
		t.Error("Exists(test-a) = false")
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate id did not panic")
		}
	}()
	Register(LevelInfo{ID: "test-a"}, buildFromConfig("level-one"))
}
