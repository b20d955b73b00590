package game

import "fmt"

// EventKind is a gameplay occurrence worth logging or sounding.
type EventKind int

const (
	EventPlayerAttack EventKind = iota
	EventPlayerJump
	EventInsufficientMana
	EventEnemyHit
	EventEnemyDefeated
	EventEnemySwing
	EventEnemyMissed
	EventPlayerHit
	EventPlayerDied
	EventEnemyRemoved
	EventWaveSpawned
	EventItemUsed
	EventStateChanged
	EventAssetFailed
)

var eventNames = [...]string{
	EventPlayerAttack:     "player_attack",
	EventPlayerJump:       "player_jump",
	EventInsufficientMana: "insufficient_mana",
	EventEnemyHit:         "enemy_hit",
	EventEnemyDefeated:    "enemy_defeated",
	EventEnemySwing:       "enemy_swing",
	EventEnemyMissed:      "enemy_missed",
	EventPlayerHit:        "player_hit",
	EventPlayerDied:       "player_died",
	EventEnemyRemoved:     "enemy_removed",
	EventWaveSpawned:      "wave_spawned",
	EventItemUsed:         "item_used",
	EventStateChanged:     "state_changed",
	EventAssetFailed:      "asset_failed",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventNames[k]
}

// Category groups event kinds for log filtering.
func (k EventKind) Category() string {
	switch k {
	case EventPlayerAttack, EventInsufficientMana, EventEnemyHit, EventEnemyDefeated,
		EventEnemySwing, EventEnemyMissed, EventPlayerHit, EventPlayerDied:
		return "combat"
	case EventPlayerJump:
		return "move"
	case EventEnemyRemoved, EventWaveSpawned:
		return "wave"
	case EventItemUsed:
		return "item"
	case EventAssetFailed:
		return "asset"
	default:
		return "state"
	}
}

// Event is one gameplay occurrence. Actor is "P" for the player and
// "S<n>" for skeletons.
type Event struct {
	Kind   EventKind
	Actor  string
	Pos    Vec3
	Amount float64
	Detail string
}
