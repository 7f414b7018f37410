package collision

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/entity"
)

func TestResolve(t *testing.T) {
	// A player projectile at (100,100) has its hitbox at (150,150) 37.5x25.
	// An enemy at (x,y) has its hitbox at (x+40,y+60) 135x45.
	tests := []struct {
		name     string
		enemyAt  core.Vec
		contacts int
	}{
		{"overlapping", core.Vec{X: 100, Y: 100}, 1},
		{"touching edge", core.Vec{X: 147.5, Y: 100}, 0},
		{"far away", core.Vec{X: 1000, Y: 100}, 0},
		{"below", core.Vec{X: 100, Y: 115}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := entity.NewFactory(config.Default())
			shot := f.Projectile(entity.KindPlayerProjectile, core.Vec{X: 100, Y: 100}, core.Vec{X: 15})
			enemy := f.Enemy(tt.enemyAt.X, tt.enemyAt.Y)

			got := Resolve([]*entity.Entity{shot}, []*entity.Entity{enemy}, nil)
			if len(got) != tt.contacts {
				t.Fatalf("Resolve() contacts = %d, expected %d", len(got), tt.contacts)
			}
			hit := tt.contacts > 0
			if shot.IsDestroyed() != hit {
				t.Errorf("projectile destroyed = %v, expected %v", shot.IsDestroyed(), hit)
			}
			if enemy.IsDestroyed() != hit {
				t.Errorf("enemy destroyed = %v, expected %v", enemy.IsDestroyed(), hit)
			}
		})
	}
}

func TestResolveSkipsMissingHitbox(t *testing.T) {
	f := entity.NewFactory(config.Default())
	shot := f.Projectile(entity.KindPlayerProjectile, core.Vec{X: 100, Y: 100}, core.Vec{X: 15})
	enemy := f.Enemy(100, 100)
	enemy.Hitbox = nil

	if got := Resolve([]*entity.Entity{shot}, []*entity.Entity{enemy}, nil); len(got) != 0 {
		t.Errorf("Resolve() contacts = %d, expected 0", len(got))
	}
	if shot.IsDestroyed() || enemy.IsDestroyed() {
		t.Error("entities without a hitbox must not take damage")
	}
}

func TestResolveTwiceDamagesTwice(t *testing.T) {
	f := entity.NewFactory(config.Default())
	player := f.Player(5)
	enemy := f.Player(5)

	friendlies := []*entity.Entity{player}
	enemies := []*entity.Entity{enemy}
	Resolve(friendlies, enemies, nil)
	Resolve(friendlies, enemies, nil)

	if player.Health != 3 {
		t.Errorf("player health = %d, expected 3", player.Health)
	}
	if enemy.Health != 3 {
		t.Errorf("enemy health = %d, expected 3", enemy.Health)
	}
}

func TestResolveEmptySets(t *testing.T) {
	f := entity.NewFactory(config.Default())
	player := f.Player(5)

	if got := Resolve(nil, []*entity.Entity{player}, nil); got != nil {
		t.Errorf("Resolve(nil, ...) = %v, expected nil", got)
	}
	if got := Resolve([]*entity.Entity{player}, nil, nil); got != nil {
		t.Errorf("Resolve(..., nil) = %v, expected nil", got)
	}
}

// Each entity loses exactly one health per contact it takes part in,
// whichever set it was passed in.
func TestResolveSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := entity.NewFactory(config.Default())
		draw := func(label string) []*entity.Entity {
			n := rapid.IntRange(0, 6).Draw(t, label+"-count")
			out := make([]*entity.Entity, n)
			for i := range out {
				e := f.Player(100)
				e.Origin = core.Vec{
					X: rapid.Float64Range(0, 400).Draw(t, label+"-x"),
					Y: rapid.Float64Range(0, 300).Draw(t, label+"-y"),
				}
				out[i] = e
			}
			return out
		}
		as, bs := draw("a"), draw("b")

		contacts := Resolve(as, bs, nil)

		seen := make(map[*entity.Entity]int)
		for _, c := range contacts {
			seen[c.A]++
			seen[c.B]++
		}
		for _, e := range append(as, bs...) {
			if lost := 100 - e.Health; lost != seen[e] {
				t.Fatalf("entity %d lost %d health in %d contacts", e.ID, lost, seen[e])
			}
		}
	})
}

func TestOverlapping(t *testing.T) {
	f := entity.NewFactory(config.Default())
	player := f.Player(5) // hitbox (5,320) 120x75
	near := f.Pickup(50, 330)
	far := f.Pickup(900, 330)
	gone := f.Pickup(50, 330)
	gone.Destroy(entity.CauseExpired)

	got := Overlapping(player, []*entity.Entity{near, far, gone})
	if len(got) != 1 || got[0] != near {
		t.Errorf("Overlapping() = %v, expected only the near pickup", got)
	}
	if near.IsDestroyed() {
		t.Error("Overlapping() must not apply damage")
	}
}
