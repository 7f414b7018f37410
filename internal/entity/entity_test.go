package entity

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
)

// fixedRand always draws the same value and never permutes.
type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64          { return r.f }
func (r fixedRand) Shuffle(int, func(i, j int)) {}

var (
	alwaysHit = fixedRand{f: 0}
	neverHit  = fixedRand{f: 0.999}
)

func newTestFactory() *Factory {
	return NewFactory(config.Default())
}

func TestHealthDestroyedInvariant(t *testing.T) {
	kinds := []Kind{KindPlayer, KindBasicEnemy, KindBoss, KindBossPhase2, KindPlayerProjectile, KindEnemyProjectile, KindPickup}

	rapid.Check(t, func(t *rapid.T) {
		f := newTestFactory()
		var e *Entity
		switch k := rapid.SampledFrom(kinds).Draw(t, "kind"); k {
		case KindPlayer:
			e = f.Player(rapid.IntRange(1, 10).Draw(t, "health"))
		case KindBasicEnemy:
			e = f.Enemy(1300, 100)
		case KindBoss:
			e, _ = f.Boss(config.BossGuardian, 0, neverHit)
		case KindBossPhase2:
			e, _ = f.Boss(config.BossMutation, 1, neverHit)
		case KindPickup:
			e = f.Pickup(1300, 100)
		default:
			e = f.Projectile(k, core.Vec{X: 100, Y: 100}, core.Vec{X: -10})
		}

		hits := rapid.IntRange(0, 40).Draw(t, "hits")
		for i := 0; i < hits; i++ {
			e.TakeDamage()
			if (e.Health <= 0) != e.IsDestroyed() {
				t.Fatalf("%v after %d hits: health=%d destroyed=%v", e.Kind, i+1, e.Health, e.IsDestroyed())
			}
		}
	})
}

func TestBossDestroyedOnNineteenthHit(t *testing.T) {
	f := newTestFactory()
	boss, err := f.Boss(config.BossGuardian, 0, neverHit)
	if err != nil {
		t.Fatalf("Boss() failed: %v", err)
	}
	if boss.Health != 19 {
		t.Fatalf("boss health = %d, expected 19", boss.Health)
	}

	for i := 1; i <= 18; i++ {
		if boss.TakeDamage() {
			t.Fatalf("boss reported destroyed on hit %d", i)
		}
		if boss.IsDestroyed() {
			t.Fatalf("boss destroyed after %d hits, expected 19", i)
		}
	}
	if !boss.TakeDamage() {
		t.Error("19th hit should report destruction")
	}
	if !boss.IsDestroyed() || boss.Health != 0 {
		t.Errorf("after 19 hits: destroyed=%v health=%d", boss.IsDestroyed(), boss.Health)
	}
	if boss.DestroyCause() != CauseDamage {
		t.Errorf("DestroyCause() = %v, expected damage", boss.DestroyCause())
	}
}

func TestShieldBlocksAllDamage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := newTestFactory()
		boss, _ := f.Boss(config.BossGuardian, 0, neverHit)
		boss.Brain().Shield.Activate()

		n := rapid.IntRange(1, 200).Draw(t, "hits")
		for i := 0; i < n; i++ {
			boss.TakeDamage()
		}
		if boss.Health != 19 {
			t.Fatalf("health = %d after %d shielded hits, expected 19", boss.Health, n)
		}
		if boss.IsDestroyed() {
			t.Fatal("shielded boss destroyed")
		}
	})
}

func TestDestroyHookRunsOnce(t *testing.T) {
	f := newTestFactory()
	calls := 0
	var gotCause Cause
	f.OnDestroy(func(e *Entity, c Cause) {
		calls++
		gotCause = c
	})

	enemy := f.Enemy(1300, 100)
	enemy.TakeDamage()
	enemy.TakeDamage()
	enemy.Destroy(CausePenetration)

	if calls != 1 {
		t.Errorf("hook ran %d times, expected 1", calls)
	}
	if gotCause != CauseDamage {
		t.Errorf("hook cause = %v, expected damage", gotCause)
	}
}

func TestFactoryIDsUnique(t *testing.T) {
	f := newTestFactory()
	seen := map[uint64]bool{}
	player := f.Player(0)
	seen[player.ID] = true
	for i := 0; i < 10; i++ {
		for _, p := range f.Fire(player, alwaysHit) {
			if seen[p.ID] {
				t.Fatalf("duplicate id %d", p.ID)
			}
			seen[p.ID] = true
		}
		e := f.Enemy(1300, float64(i))
		if seen[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestPlayerFire(t *testing.T) {
	f := newTestFactory()
	player := f.Player(0)

	shots := f.Fire(player, neverHit)
	if len(shots) != 1 {
		t.Fatalf("player fired %d projectiles, expected 1", len(shots))
	}
	p := shots[0]
	if p.Kind != KindPlayerProjectile || p.Faction() != FactionPlayerProjectile {
		t.Errorf("projectile kind = %v faction = %v", p.Kind, p.Faction())
	}
	if p.Origin != (core.Vec{X: 115, Y: 320}) {
		t.Errorf("projectile origin = %+v, expected {115 320}", p.Origin)
	}
	if p.Velocity != (core.Vec{X: 15}) {
		t.Errorf("projectile velocity = %+v, expected {15 0}", p.Velocity)
	}
	box, ok := p.Bounds()
	if !ok || box.W != 37.5 || box.H != 25 || box.X != 165 {
		t.Errorf("projectile bounds = %+v ok=%v", box, ok)
	}
}

func TestEnemyFireTrial(t *testing.T) {
	f := newTestFactory()
	enemy := f.Enemy(1300, 200)

	if shots := f.Fire(enemy, neverHit); len(shots) != 0 {
		t.Errorf("enemy fired %d projectiles on a failed trial", len(shots))
	}
	shots := f.Fire(enemy, alwaysHit)
	if len(shots) != 1 {
		t.Fatalf("enemy fired %d projectiles, expected 1", len(shots))
	}
	if shots[0].Kind != KindEnemyProjectile {
		t.Errorf("kind = %v, expected EnemyProjectile", shots[0].Kind)
	}
	if shots[0].Origin != (core.Vec{X: 1200, Y: 250}) {
		t.Errorf("origin = %+v, expected {1200 250}", shots[0].Origin)
	}
}

func TestEscalatedBossVolley(t *testing.T) {
	f := newTestFactory()
	boss, err := f.Boss(config.BossMutation, 1, neverHit)
	if err != nil {
		t.Fatal(err)
	}
	if boss.Kind != KindBossPhase2 {
		t.Errorf("Kind = %v, expected BossPhase2", boss.Kind)
	}
	if boss.Health <= 19 {
		t.Errorf("phase two health %d should exceed phase one", boss.Health)
	}

	shots := f.Fire(boss, alwaysHit)
	if len(shots) != 3 {
		t.Fatalf("volley size = %d, expected 3", len(shots))
	}
	expected := []struct {
		origin, velocity core.Vec
	}{
		{core.Vec{X: 950, Y: 475}, core.Vec{X: -15}},
		{core.Vec{X: 950, Y: 425}, core.Vec{X: -12, Y: -5}},
		{core.Vec{X: 950, Y: 525}, core.Vec{X: -12, Y: 5}},
	}
	for i, want := range expected {
		if shots[i].Origin != want.origin || shots[i].Velocity != want.velocity {
			t.Errorf("shot %d = origin %+v velocity %+v, expected %+v %+v",
				i, shots[i].Origin, shots[i].Velocity, want.origin, want.velocity)
		}
	}
}

func TestUnknownBoss(t *testing.T) {
	f := newTestFactory()
	if _, err := f.Boss("nobody", 0, neverHit); err == nil {
		t.Error("Boss() with unknown profile should fail")
	}
}

func TestBossStaysInBand(t *testing.T) {
	f := newTestFactory()
	boss, _ := f.Boss(config.BossGuardian, 0, rand.New(rand.NewSource(7)))
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		boss.Update(rng)
		y := boss.Position().Y
		if y < -100 || y > 475 {
			t.Fatalf("tick %d: boss y = %v outside [-100, 475]", i, y)
		}
	}
}

func TestBossRollbackDiscardsStep(t *testing.T) {
	cfg := config.Default()
	b := cfg.Bosses[config.BossGuardian]
	b.Start = config.Point{X: 1000, Y: 475}
	b.MoveRepeat = 1
	b.MoveRunLength = 1
	cfg.Bosses[config.BossGuardian] = b

	// fixedRand never permutes, so the pattern stays {+8, -8, 0}.
	boss, err := NewFactory(cfg).Boss(config.BossGuardian, 0, neverHit)
	if err != nil {
		t.Fatal(err)
	}

	expected := []float64{475, 467, 467, 475, 467}
	for i, want := range expected {
		boss.Update(neverHit)
		if y := boss.Position().Y; y != want {
			t.Errorf("tick %d: y = %v, expected %v", i+1, y, want)
		}
	}
}

func TestPlayerSteerAndBounds(t *testing.T) {
	f := newTestFactory()
	player := f.Player(0)

	player.Steer(core.ActionMoveUp)
	for i := 0; i < 100; i++ {
		player.Update(neverHit)
	}
	if y := player.Position().Y; y < -40 || y > -40+8 {
		t.Errorf("player y = %v, expected to stop at the top of the band", y)
	}

	player.Steer(core.ActionStopVertical)
	before := player.Position()
	player.Update(neverHit)
	if player.Position() != before {
		t.Error("player moved after StopVertical")
	}

	player.Steer(core.ActionMoveLeft)
	player.Update(neverHit)
	if x := player.Position().X; x != 5 {
		t.Errorf("player x = %v, expected rollback at the left edge", x)
	}

	player.Steer(core.ActionMoveRight)
	player.Update(neverHit)
	if x := player.Position().X; x != 13 {
		t.Errorf("player x = %v, expected 13", x)
	}
}

func TestHealCapped(t *testing.T) {
	f := newTestFactory()
	player := f.Player(0)
	player.Heal(3, player.MaxHealth)
	if player.Health != 8 {
		t.Errorf("Health = %d, expected 8", player.Health)
	}
	player.Heal(10, player.MaxHealth)
	if player.Health != 10 {
		t.Errorf("Health = %d, expected cap 10", player.Health)
	}
}

func TestPickupDriftAndExpiry(t *testing.T) {
	f := newTestFactory()
	heart := f.Pickup(1300, 200)
	if heart.HealAmount() != 1 {
		t.Errorf("HealAmount() = %d, expected 1", heart.HealAmount())
	}

	for i := 1; i <= 5; i++ {
		heart.Update(neverHit)
	}
	if heart.Offset.Y != 5 {
		t.Errorf("after 5 ticks Offset.Y = %v, expected 5", heart.Offset.Y)
	}
	for i := 1; i <= 5; i++ {
		heart.Update(neverHit)
	}
	if heart.Offset.Y != 0 {
		t.Errorf("after 10 ticks Offset.Y = %v, expected 0", heart.Offset.Y)
	}
	if heart.Offset.X >= 0 {
		t.Errorf("heart should drift left, Offset.X = %v", heart.Offset.X)
	}

	ticks := 10
	for !heart.IsDestroyed() && ticks < 200 {
		heart.Update(neverHit)
		ticks++
	}
	if !heart.IsDestroyed() || heart.DestroyCause() != CauseExpired {
		t.Fatalf("heart not expired after %d ticks", ticks)
	}
	if ticks < 124 || ticks > 126 {
		t.Errorf("heart expired after %d ticks, expected about 125", ticks)
	}
}

func TestAbsentHitbox(t *testing.T) {
	cfg := config.Default()
	cfg.Pickup.Hitbox = config.HitboxConfig{}
	f := NewFactory(cfg)
	heart := f.Pickup(100, 100)
	if _, ok := heart.Bounds(); ok {
		t.Error("zero-size hitbox should be absent")
	}
}

func TestHealthPercent(t *testing.T) {
	f := newTestFactory()
	boss, _ := f.Boss(config.BossMutation, 1, neverHit)
	for i := 0; i < 15; i++ {
		boss.TakeDamage()
	}
	if got := boss.HealthPercent(); got != 0.5 {
		t.Errorf("HealthPercent() = %v, expected 0.5", got)
	}
}
