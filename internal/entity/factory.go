package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/skyfighter/internal/behavior"
	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
)

// ErrUnknownBoss is returned when a boss profile is not in the config.
var ErrUnknownBoss = errors.New("entity: unknown boss profile")

// pilot holds the player's movement limits.
type pilot struct {
	speed      float64
	minX, maxX float64
	minY, maxY float64
}

// gun describes what an entity fires and from where.
type gun struct {
	muzzle core.Vec
	rate   float64
	volley behavior.Volley
	kind   Kind
	hitbox *Hitbox
}

// Factory builds entities from tuning and assigns their ids.
// One factory belongs to one level; ids are unique within it.
type Factory struct {
	cfg       config.Config
	nextID    uint64
	tick      float32
	onDestroy func(*Entity, Cause)
}

// NewFactory creates a factory for the given tuning.
func NewFactory(cfg config.Config) *Factory {
	tick := time.Duration(cfg.TickMS) * time.Millisecond
	return &Factory{
		cfg:  cfg,
		tick: float32(tick.Seconds()),
	}
}

// OnDestroy installs the hook run once per entity when it is destroyed.
// It applies to entities built after the call.
func (f *Factory) OnDestroy(fn func(*Entity, Cause)) {
	f.onDestroy = fn
}

func (f *Factory) base(kind Kind, origin core.Vec, health int, hb config.HitboxConfig) *Entity {
	f.nextID++
	return &Entity{
		ID:        f.nextID,
		Kind:      kind,
		Origin:    origin,
		Hitbox:    newHitbox(hb),
		Health:    health,
		MaxHealth: health,
		onDestroy: f.onDestroy,
	}
}

// newHitbox returns nil for a degenerate box, which disables collisions.
func newHitbox(hb config.HitboxConfig) *Hitbox {
	if hb.W <= 0 || hb.H <= 0 {
		return nil
	}
	return &Hitbox{X: hb.X, Y: hb.Y, W: hb.W, H: hb.H}
}

func vec(p config.Point) core.Vec {
	return core.Vec{X: p.X, Y: p.Y}
}

// Player builds the player craft. health <= 0 uses the tuned value.
func (f *Factory) Player(health int) *Entity {
	pc := f.cfg.Player
	if health <= 0 {
		health = pc.Health
	}
	e := f.base(KindPlayer, vec(pc.Start), health, pc.Hitbox)
	e.MaxHealth = max(pc.MaxHealth, health)
	e.pilot = &pilot{
		speed: pc.Speed,
		minX:  pc.MinX,
		maxX:  pc.MaxX,
		minY:  pc.MinY,
		maxY:  pc.MaxY,
	}
	e.gun = &gun{
		muzzle: vec(pc.Muzzle),
		volley: behavior.Volley{{Velocity: vec(f.cfg.Projectiles.Player.Velocity)}},
		kind:   KindPlayerProjectile,
		hitbox: newHitbox(f.cfg.Projectiles.Player.Hitbox),
	}
	return e
}

// Enemy builds a basic enemy at the given position.
func (f *Factory) Enemy(x, y float64) *Entity {
	ec := f.cfg.Enemy
	e := f.base(KindBasicEnemy, core.Vec{X: x, Y: y}, ec.Health, ec.Hitbox)
	e.Velocity = core.Vec{X: ec.SpeedX}
	e.gun = &gun{
		muzzle: vec(ec.Muzzle),
		rate:   ec.FireRate,
		volley: behavior.Volley{{Velocity: vec(f.cfg.Projectiles.Enemy.Velocity)}},
		kind:   KindEnemyProjectile,
		hitbox: newHitbox(f.cfg.Projectiles.Enemy.Hitbox),
	}
	return e
}

// Boss builds the boss for the given profile. Phase 0 is KindBoss, later
// phases are KindBossPhase2.
func (f *Factory) Boss(profile string, phase int, rng behavior.Rand) (*Entity, error) {
	bc, ok := f.cfg.Bosses[profile]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBoss, profile)
	}

	kind := KindBoss
	if phase > 0 {
		kind = KindBossPhase2
	}
	e := f.base(kind, vec(bc.Start), bc.Health, bc.Hitbox)

	volley := make(behavior.Volley, len(bc.Volley))
	for i, s := range bc.Volley {
		volley[i] = behavior.Shot{OffsetY: s.OffsetY, Velocity: vec(s.Velocity)}
	}
	e.gun = &gun{
		muzzle: vec(bc.Muzzle),
		rate:   bc.FireRate,
		volley: volley,
		kind:   KindEnemyProjectile,
		hitbox: newHitbox(f.cfg.Projectiles.Boss.Hitbox),
	}
	e.brain = &Brain{
		Title:  bc.Title,
		Phase:  phase,
		Moves:  behavior.NewMovePattern(rng, bc.MoveRepeat, bc.MoveSpeed, bc.MoveRunLength, bc.MoveReshuffle),
		Shield: behavior.NewShieldTimer(bc.ShieldChance, bc.ShieldTicks),
		minY:   bc.MinY,
		maxY:   bc.MaxY,
	}
	return e, nil
}

// Pickup builds a heart entering at the given position.
func (f *Factory) Pickup(x, y float64) *Entity {
	pc := f.cfg.Pickup
	e := f.base(KindPickup, core.Vec{X: x, Y: y}, 1, pc.Hitbox)
	e.drift = &drift{
		tween:  gween.New(0, float32(-f.cfg.Viewport.Width), float32(pc.TravelSeconds), ease.Linear),
		dt:     f.tick,
		amount: pc.WobbleAmount,
		every:  pc.WobbleTicks,
		heal:   pc.Heal,
	}
	return e
}

// Projectile builds a projectile of the given kind at a world position.
func (f *Factory) Projectile(kind Kind, at, velocity core.Vec) *Entity {
	hb := f.cfg.Projectiles.Player.Hitbox
	if kind == KindEnemyProjectile {
		hb = f.cfg.Projectiles.Enemy.Hitbox
	}
	e := f.base(kind, at, 1, hb)
	e.Velocity = velocity
	return e
}

// Fire asks the entity for this tick's projectiles. Kinds without a gun
// return nil.
func (f *Factory) Fire(e *Entity, rng behavior.Rand) []*Entity {
	if e.destroyed || e.gun == nil {
		return nil
	}
	fire := capabilities[e.Kind].fire
	if fire == nil {
		return nil
	}
	return fire(f, e, rng)
}

// release turns a volley into projectile entities at the muzzle.
func (f *Factory) release(e *Entity, v behavior.Volley) []*Entity {
	if len(v) == 0 {
		return nil
	}
	g := e.gun
	muzzle := e.Position().Add(g.muzzle)
	out := make([]*Entity, 0, len(v))
	for _, shot := range v {
		f.nextID++
		p := &Entity{
			ID:        f.nextID,
			Kind:      g.kind,
			Origin:    core.Vec{X: muzzle.X, Y: muzzle.Y + shot.OffsetY},
			Velocity:  shot.Velocity,
			Health:    1,
			MaxHealth: 1,
			onDestroy: f.onDestroy,
		}
		if g.hitbox != nil {
			hb := *g.hitbox
			p.Hitbox = &hb
		}
		out = append(out, p)
	}
	return out
}
