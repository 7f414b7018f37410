package entity

// Kind is the closed set of entity variants. Behavior is looked up by kind
// in the capability table; there is no per-variant type.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBasicEnemy
	KindBoss
	KindBossPhase2
	KindPlayerProjectile
	KindEnemyProjectile
	KindPickup
	kindCount
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindBasicEnemy:
		return "BasicEnemy"
	case KindBoss:
		return "Boss"
	case KindBossPhase2:
		return "BossPhase2"
	case KindPlayerProjectile:
		return "PlayerProjectile"
	case KindEnemyProjectile:
		return "EnemyProjectile"
	case KindPickup:
		return "Pickup"
	default:
		return "Unknown"
	}
}

// IsBoss reports whether the kind is a boss phase.
func (k Kind) IsBoss() bool {
	return k == KindBoss || k == KindBossPhase2
}

// IsProjectile reports whether the kind is a projectile.
func (k Kind) IsProjectile() bool {
	return k == KindPlayerProjectile || k == KindEnemyProjectile
}

// Faction controls which collision checks apply to an entity.
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
	FactionPlayerProjectile
	FactionEnemyProjectile
	FactionPickup
)

// String returns a human-readable name for the faction.
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "PLAYER"
	case FactionEnemy:
		return "ENEMY"
	case FactionPlayerProjectile:
		return "PROJECTILE_PLAYER"
	case FactionEnemyProjectile:
		return "PROJECTILE_ENEMY"
	case FactionPickup:
		return "PICKUP"
	default:
		return "Unknown"
	}
}

// Cause records why an entity was destroyed.
type Cause uint8

const (
	CauseNone        Cause = iota
	CauseDamage            // health reached zero
	CausePenetration       // crossed a penetration boundary
	CauseOffscreen         // culled after leaving the viewport
	CauseCollected         // pickup touched the player
	CauseExpired           // scripted animation finished
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseDamage:
		return "damage"
	case CausePenetration:
		return "penetration"
	case CauseOffscreen:
		return "offscreen"
	case CauseCollected:
		return "collected"
	case CauseExpired:
		return "expired"
	default:
		return "unknown"
	}
}
