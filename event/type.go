package event

// EventType identifies an outbound fire-control event
type EventType int

const (
	// EventTargetLocked signals a primary target identity change
	// Trigger: acquisition refresh picking a new primary
	// Consumer: HUD, audio | Payload: *TargetLockedPayload
	EventTargetLocked EventType = iota

	// EventTargetLost signals the lock set going empty
	// Trigger: acquisition refresh with no valid candidate
	// Consumer: HUD, audio | Payload: *TargetLostPayload
	EventTargetLost

	// EventWeaponFired carries one volley's concrete fire commands
	// Trigger: fire controller on cooldown expiry with a valid primary
	// Consumer: bullet spawner, audio, VFX | Payload: *WeaponFiredPayload
	EventWeaponFired

	// EventUpgradeApplied confirms a weights/tier hot-swap
	// Trigger: Engine.ApplyUpgrade
	// Consumer: HUD | Payload: *UpgradeAppliedPayload
	EventUpgradeApplied
)

func (t EventType) String() string {
	switch t {
	case EventTargetLocked:
		return "target-locked"
	case EventTargetLost:
		return "target-lost"
	case EventWeaponFired:
		return "weapon-fired"
	case EventUpgradeApplied:
		return "upgrade-applied"
	}
	return "unknown"
}

// GameEvent is one queued outbound event
type GameEvent struct {
	Type    EventType
	Payload any
}
