package event

const (
	EventWeaponSwitched     = "weapon.switched"
	EventResourceDepleted   = "resource.depleted"
	EventMultiFireExhausted = "fire.multi_exhausted"
	EventFired              = "fire.shot"
	EventAimFinished        = "aim.finished"
)

type WeaponSwitchedEvent struct {
	From   int
	To     int
	Weapon string
}

// ResourceDepletedEvent covers both running dry and overheating.
type ResourceDepletedEvent struct {
	Kind  string
	Cause string
	Have  float64
	Need  float64
}

type MultiFireExhaustedEvent struct {
	Weapon  string
	Kind    string
	Spawned int
	Muzzles int
}

type FiredEvent struct {
	Weapon  string
	Spawned int
}

type AimFinishedEvent struct {
	Aiming  bool
	Profile int
}
