package config

import (
	_ "embed"
)

//go:embed defaults/skyfighter.yaml
var defaultYAML []byte

// Boss profile keys used by the default campaign.
const (
	BossGuardian = "guardian"
	BossMutation = "mutation"
)

// Default returns the built-in tuning. It mirrors defaults/skyfighter.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 1300, Height: 750},
		TickMS:   40,
		Player: PlayerConfig{
			Start:     Point{X: 5, Y: 300},
			Health:    5,
			MaxHealth: 10,
			Speed:     8,
			MinX:      0,
			MaxX:      650,
			MinY:      -40,
			MaxY:      600,
			Hitbox:    HitboxConfig{X: 0, Y: 20, W: 120, H: 75},
			Muzzle:    Point{X: 110, Y: 20},
		},
		Enemy: EnemyConfig{
			Health:   1,
			SpeedX:   -6,
			FireRate: 0.01,
			Hitbox:   HitboxConfig{X: 40, Y: 60, W: 135, H: 45},
			Muzzle:   Point{X: -100, Y: 50},
		},
		Projectiles: ProjectilesConfig{
			Player: ProjectileConfig{
				Velocity: Point{X: 15},
				Hitbox:   HitboxConfig{X: 50, Y: 50, W: 37.5, H: 25},
			},
			Enemy: ProjectileConfig{
				Velocity: Point{X: -10},
				Hitbox:   HitboxConfig{X: 0, Y: 10, W: 30, H: 15},
			},
			Boss: ProjectileConfig{
				Velocity: Point{X: -15},
				Hitbox:   HitboxConfig{X: 0, Y: 20, W: 60, H: 30},
			},
		},
		Bosses: map[string]BossConfig{
			BossGuardian: {
				Title:         "Guardian",
				Start:         Point{X: 1000, Y: 400},
				Health:        19,
				FireRate:      0.04,
				ShieldChance:  0.002,
				ShieldTicks:   500,
				MoveRepeat:    5,
				MoveSpeed:     8,
				MoveRunLength: 10,
				MoveReshuffle: true,
				MinY:          -100,
				MaxY:          475,
				Hitbox:        HitboxConfig{X: 50, Y: 100, W: 240, H: 90},
				Muzzle:        Point{X: -50, Y: 75},
				Volley: []ShotConfig{
					{OffsetY: 0, Velocity: Point{X: -15}},
				},
			},
			BossMutation: {
				Title:         "Mutation",
				Start:         Point{X: 1000, Y: 400},
				Health:        30,
				FireRate:      0.1,
				ShieldChance:  0,
				ShieldTicks:   0,
				MoveRepeat:    5,
				MoveSpeed:     8,
				MoveRunLength: 20,
				MoveReshuffle: false,
				MinY:          -100,
				MaxY:          475,
				Hitbox:        HitboxConfig{X: 50, Y: 100, W: 240, H: 90},
				Muzzle:        Point{X: -50, Y: 75},
				Volley: []ShotConfig{
					{OffsetY: 0, Velocity: Point{X: -15}},
					{OffsetY: -50, Velocity: Point{X: -12, Y: -5}},
					{OffsetY: 50, Velocity: Point{X: -12, Y: 5}},
				},
			},
		},
		Pickup: PickupConfig{
			Chance:        0.01,
			Heal:          1,
			TravelSeconds: 5,
			WobbleAmount:  5,
			WobbleTicks:   5,
			Hitbox:        HitboxConfig{X: 0, Y: 0, W: 50, H: 50},
		},
		Boundaries: BoundariesConfig{
			EnemyPenetration:      0,
			ProjectilePenetration: 1500,
			SpawnMarginBottom:     150,
		},
		Levels: []LevelConfig{
			{
				ID:               "level-one",
				Title:            "Coastline",
				EnemyCap:         5,
				SpawnProbability: 0.20,
				KillThreshold:    10,
				Next:             "level-two",
			},
			{
				ID:               "level-two",
				Title:            "Storm Front",
				EnemyCap:         8,
				SpawnProbability: 0.30,
				KillThreshold:    15,
				Next:             "level-three",
			},
			{
				ID:         "level-three",
				Title:      "The Guardian",
				EnemyCap:   1,
				BossPhases: []string{BossGuardian, BossMutation},
			},
		},
		Audio: AudioConfig{
			Enabled:      true,
			EffectVolume: 0.6,
			MusicVolume:  0.3,
		},
	}
}
